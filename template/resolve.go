package template

import (
	"time"

	"github.com/robinvdvleuten/pinto/entry"
)

// Choice constrains the account of one resolved line. A fixed choice needs
// no prompting; otherwise the user picks from Options, with "other" always
// allowing a free-text fallback through the account matcher.
type Choice struct {
	Fixed      string
	Options    []string
	AllowOther bool
}

// FixedChoice pins the account without prompting.
func FixedChoice(account string) Choice {
	return Choice{Fixed: account}
}

// PickFrom offers the given accounts plus a free-text "other". An empty
// options list means a fully free-form prompt.
func PickFrom(options []string) Choice {
	return Choice{Options: options, AllowOther: true}
}

// IsFixed reports whether the choice needs no prompting.
func (c Choice) IsFixed() bool {
	return c.Fixed != ""
}

// ResolvedLine is one posting of the seed. Splits are carried along
// unchanged; their amounts can only be computed once the first posting's
// amount is known.
type ResolvedLine struct {
	Account Choice
	NoValue bool
	Splits  []SplitSpec
}

// Seed is the partially filled draft a template produces. Nil pointers and
// HasDate=false mark fields still to be prompted for.
type Seed struct {
	Date      time.Time
	HasDate   bool
	Payee     *string
	Narration *string
	Lines     []ResolvedLine
}

// PendingChoice names a line whose account still needs a user decision.
type PendingChoice struct {
	Line       int
	Options    []string
	AllowOther bool
}

// Resolve evaluates a template against a reference date. It performs no
// I/O: the returned seed carries everything the template determined, and
// pending lists exactly the account choices left open, in line order. A
// date expression that does not parse fails with a *TemplateFormatError.
func Resolve(t *Template, today time.Time) (*Seed, []PendingChoice, error) {
	seed := &Seed{Payee: t.Payee, Narration: t.Narration}

	if t.Date != nil {
		date, err := entry.ParseDate(*t.Date, today)
		if err != nil {
			return nil, nil, &TemplateFormatError{Name: t.Label, Err: err}
		}
		seed.Date = date
		seed.HasDate = true
	}

	var pending []PendingChoice
	for i, line := range t.Lines {
		resolved := ResolvedLine{NoValue: line.NoValue, Splits: line.Splits}

		if len(line.Accounts) == 1 {
			resolved.Account = FixedChoice(line.Accounts[0])
		} else {
			resolved.Account = PickFrom(line.Accounts)
			pending = append(pending, PendingChoice{
				Line:       i,
				Options:    line.Accounts,
				AllowOther: true,
			})
		}

		seed.Lines = append(seed.Lines, resolved)
	}

	return seed, pending, nil
}
