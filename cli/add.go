package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/pinto/corpus"
	"github.com/robinvdvleuten/pinto/entry"
	"github.com/robinvdvleuten/pinto/journal"
	"github.com/robinvdvleuten/pinto/match"
	"github.com/robinvdvleuten/pinto/telemetry"
	"github.com/robinvdvleuten/pinto/template"
)

type AddCmd struct {
	Template  string `help:"Template label to seed the transaction." short:"t"`
	Date      string `help:"Transaction date expression."`
	Payee     string `help:"Transaction payee."`
	Narration string `help:"Transaction narration."`
	Tag       string `help:"Transaction tag."`
	Pending   bool   `help:"Mark the transaction as pending ('!') instead of cleared ('*')."`
	Split     bool   `help:"Offer ad-hoc splits against the first posting."`
	DryRun    bool   `help:"Compose the transaction without writing to the journal."`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := withTelemetry(ctx, globals, "add")
	defer report()

	ws, err := openWorkspace(runCtx, globals)
	if err != nil {
		return err
	}

	cfg := globals.matchConfig()
	today := time.Now()

	seed, err := cmd.resolveSeed(ctx.Stdout, ws, cfg, today)
	if err != nil {
		return err
	}

	builder := entry.NewBuilder()
	if cmd.Pending {
		builder.SetPending()
	}
	if cmd.Tag != "" {
		builder.SetTag(cmd.Tag)
	}

	// Date.
	if seed.HasDate {
		builder.SetDate(seed.Date)
	} else {
		date, err := promptDate(ctx.Stdout, cmd.Date, today)
		if err != nil {
			return err
		}
		builder.SetDate(date)
	}

	// Payee.
	payee := cmd.Payee
	if seed.Payee != nil {
		payee = *seed.Payee
	} else {
		payee, err = promptEntity(ctx.Stdout, "payee", cmd.Payee, ws.Corpus.Payees, cfg, true)
		if err != nil {
			return err
		}
	}
	builder.SetPayee(payee)
	if payee != "" {
		printInfof(ctx.Stdout, "Payee will be %s", payee)
	} else {
		printInfof(ctx.Stdout, "No payee")
	}

	// Narration.
	narration := cmd.Narration
	if seed.Narration != nil {
		narration = *seed.Narration
	} else {
		initial := cmd.Narration
		if initial == "" && payee != "" {
			if previous := corpus.NarrationsFor(ws.Transactions, payee); len(previous) > 0 {
				initial = previous[0]
			}
		}
		narration, err = promptInput("Enter transaction narration", initial)
		if err != nil {
			return err
		}
	}
	builder.SetNarration(narration)
	if narration != "" {
		printInfof(ctx.Stdout, "Narration will be %s", narration)
	} else {
		printInfof(ctx.Stdout, "No narration")
	}

	// Postings, template lines first.
	var splits []template.SplitSpec
	for i, line := range seed.Lines {
		printInfof(ctx.Stdout, "Adding line %d of %d...", i+1, len(seed.Lines))
		if err := cmd.addLine(ctx.Stdout, ws, cfg, builder, line); err != nil {
			return err
		}
		splits = append(splits, line.Splits...)
	}

	if len(seed.Lines) > 0 && builder.Len() < 2 {
		printInfof(ctx.Stdout, "Template provides only one line; adding second.")
	}
	for builder.Len() < 2 || len(seed.Lines) == 0 {
		if builder.Len() >= 2 {
			more, err := promptYesNo("Add another line?")
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}

		printInfof(ctx.Stdout, "Adding line %d...", builder.Len()+1)
		free := template.ResolvedLine{Account: template.PickFrom(nil)}
		if err := cmd.addLine(ctx.Stdout, ws, cfg, builder, free); err != nil {
			return err
		}
	}

	if err := cmd.applySplits(ctx.Stdout, ws, cfg, builder, splits); err != nil {
		return err
	}

	draft, err := builder.Finalize()
	if err != nil {
		var incomplete *entry.IncompleteTransactionError
		if errors.As(err, &incomplete) {
			return commandErrorf("%s", incomplete.Error())
		}
		return err
	}

	rendered := entry.NewFormatter().Format(draft)
	printInfof(ctx.Stdout, "Draft transaction:")
	_, _ = fmt.Fprintln(ctx.Stdout, draftStyle.Render(rendered))

	if isTerminal() {
		confirmed, err := promptYesNo("Commit?")
		if err != nil {
			return err
		}
		if !confirmed {
			return commandErrorf("the transaction did not proceed")
		}
	}

	if cmd.DryRun {
		printSuccess(ctx.Stdout, "Committed! (dry run, nothing written)")
		return nil
	}

	insertTimer := telemetry.FromContext(runCtx).Start("insert")
	updated := journal.Insert(ws.Text, ws.Transactions, rendered, draft.Date)
	err = ws.Journal.Write(updated)
	insertTimer.End()
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Committed to %s", pathStyle.Render(ws.Journal.Path)))
	return nil
}

// resolveSeed looks up and resolves the requested template. An inexact label
// is reconciled with the same fuzzy flow used for payees and accounts.
func (cmd *AddCmd) resolveSeed(w io.Writer, ws *Workspace, cfg match.Config, today time.Time) (*template.Seed, error) {
	if cmd.Template == "" {
		return &template.Seed{}, nil
	}

	tmpl, candidates, err := findTemplate(ws.Templates, cmd.Template, cfg)
	if err != nil {
		return nil, commandErrorf("%s", err.Error())
	}
	if tmpl == nil {
		label, err := promptSelect("Choose template", candidates)
		if err != nil {
			return nil, err
		}
		if tmpl, err = ws.Templates.Get(label); err != nil {
			return nil, err
		}
	}
	printInfof(w, "Using template %s", tmpl.Label)

	seed, _, err := template.Resolve(tmpl, today)
	if err != nil {
		return nil, err
	}
	return seed, nil
}

// findTemplate fetches a template by exact label, falling back to fuzzy
// matching. It returns either the template, or the candidate labels for the
// caller to offer, or an error when nothing comes close.
func findTemplate(store *template.Store, label string, cfg match.Config) (*template.Template, []string, error) {
	tmpl, err := store.Get(label)
	if err == nil {
		return tmpl, nil, nil
	}

	var notFound *template.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		return nil, nil, err
	}

	result := store.Search(label, cfg)
	if result.ExactUnique != "" {
		tmpl, err := store.Get(result.ExactUnique)
		return tmpl, nil, err
	}
	if len(result.Candidates) > 0 {
		return nil, result.Values(), nil
	}

	return nil, nil, err
}

// addLine collects one posting: its account, constrained or free, and its
// value unless the line is declared value-less.
func (cmd *AddCmd) addLine(w io.Writer, ws *Workspace, cfg match.Config, builder *entry.Builder, line template.ResolvedLine) error {
	var account string
	var err error

	switch {
	case line.Account.IsFixed():
		account = line.Account.Fixed
	case len(line.Account.Options) > 0:
		options := append(slices.Clone(line.Account.Options), otherOption)
		account, err = promptSelect("Choose account", options)
		if err != nil {
			return err
		}
		if account == otherOption {
			account, err = promptEntity(w, "account", "", ws.Corpus.Accounts, cfg, false)
			if err != nil {
				return err
			}
		}
	default:
		account, err = promptEntity(w, "account", "", ws.Corpus.Accounts, cfg, false)
		if err != nil {
			return err
		}
	}
	printInfof(w, "Account will be %s", account)

	var amount *entry.Amount
	if !line.NoValue {
		amount, err = promptAmount(w, "")
		if err != nil {
			return err
		}
		if amount != nil {
			printInfof(w, "Value will be %s", amount)
		}
	}

	builder.AddPosting(account, amount)
	return nil
}

// applySplits derives the extra postings declared by the template, then
// offers ad-hoc splits when --split was passed. All splits are computed from
// the first posting's amount.
func (cmd *AddCmd) applySplits(w io.Writer, ws *Workspace, cfg match.Config, builder *entry.Builder, splits []template.SplitSpec) error {
	base := builder.FirstAmount()
	if base == nil {
		if len(splits) > 0 {
			printInfof(w, "First posting has no value; splits skipped")
		}
		return nil
	}

	for _, split := range splits {
		if builder.AddSplit(split.Account, split.Fraction) {
			derived := entry.Split(base, split.Fraction)
			printInfof(w, "%s will be split into %s with value %s", base, split.Account, derived)
		} else {
			printInfof(w, "Zero value split ignored")
		}
	}

	if !cmd.Split {
		return nil
	}

	for {
		more, err := promptYesNo("Add a split?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		account, err := promptEntity(w, "split account", "", ws.Corpus.Accounts, cfg, false)
		if err != nil {
			return err
		}
		fraction, err := promptFraction(w, "-0.5")
		if err != nil {
			return err
		}

		if builder.AddSplit(account, fraction) {
			derived := entry.Split(base, fraction)
			printInfof(w, "%s will be split into %s with value %s", base, account, derived)
		} else {
			printInfof(w, "Zero value split ignored")
		}
	}
}
