package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/pinto/match"
)

type TemplatesCmd struct {
	Search string `help:"Fuzzy search term." short:"s"`
	Limit  int    `help:"Maximum number of results." short:"n" default:"10"`
}

func (cmd *TemplatesCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runSearch(ctx, globals, "templates", cmd.Search, cmd.Limit,
		func(ws *Workspace) []string { return ws.Templates.Labels() })
}

type AccountsCmd struct {
	Search string `help:"Fuzzy search term." short:"s"`
	Limit  int    `help:"Maximum number of results." short:"n" default:"10"`
}

func (cmd *AccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runSearch(ctx, globals, "accounts", cmd.Search, cmd.Limit,
		func(ws *Workspace) []string { return ws.Corpus.Accounts })
}

type PayeesCmd struct {
	Search string `help:"Fuzzy search term." short:"s"`
	Limit  int    `help:"Maximum number of results." short:"n" default:"10"`
}

func (cmd *PayeesCmd) Run(ctx *kong.Context, globals *Globals) error {
	return runSearch(ctx, globals, "payees", cmd.Search, cmd.Limit,
		func(ws *Workspace) []string { return ws.Corpus.Payees })
}

// runSearch lists a workspace vocabulary, optionally narrowed by a fuzzy
// search term. Without a term the ranked values are listed as-is.
func runSearch(ctx *kong.Context, globals *Globals, name, search string, limit int, values func(*Workspace) []string) error {
	runCtx, report := withTelemetry(ctx, globals, name)
	defer report()

	ws, err := openWorkspace(runCtx, globals)
	if err != nil {
		return err
	}

	results := values(ws)
	if search != "" {
		results = searchValues(search, results, globals.matchConfig(), limit)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		printInfof(ctx.Stdout, "No matches")
		return nil
	}
	for _, value := range results {
		_, _ = fmt.Fprintln(ctx.Stdout, successStyle.Render(value))
	}

	return nil
}

func searchValues(query string, values []string, cfg match.Config, limit int) []string {
	if limit > 0 {
		cfg.MaxCandidates = limit
	}

	result := match.Match(query, values, cfg)
	if result.ExactUnique != "" {
		return []string{result.ExactUnique}
	}
	return result.Values()
}
