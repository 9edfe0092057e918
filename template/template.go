// Package template loads reusable transaction skeletons from a YAML file
// and resolves them into a partially filled draft plus the choices that
// remain for interactive prompting.
package template

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSplitFraction is assumed when a split omits its fraction.
var DefaultSplitFraction = decimal.NewFromFloat(-0.5)

// Template is a named transaction skeleton. Nil pointer fields were absent
// from the source and are left for interactive prompting; an explicitly
// empty narration stays an empty string.
type Template struct {
	Label     string
	Date      *string
	Payee     *string
	Narration *string
	Lines     []LineSpec
}

// LineSpec describes one posting of a template. A single account fixes the
// posting, multiple accounts mean "prompt to choose between these", and no
// accounts at all leaves the account fully free-form.
type LineSpec struct {
	Accounts []string
	Splits   []SplitSpec
	NoValue  bool
}

// SplitSpec derives an extra posting from the first posting's amount: the
// split posting books round(amount * Fraction, 2) against Account.
type SplitSpec struct {
	Account  string
	Fraction decimal.Decimal
}

func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Date      *string    `yaml:"date"`
		Payee     *string    `yaml:"payee"`
		Narration *string    `yaml:"narration"`
		Lines     []LineSpec `yaml:"lines"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	t.Date = raw.Date
	t.Payee = raw.Payee
	t.Narration = raw.Narration
	t.Lines = raw.Lines
	return nil
}

func (l *LineSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Account  string      `yaml:"account"`
		Accounts []string    `yaml:"accounts"`
		Splits   []SplitSpec `yaml:"splits"`
		NoValue  bool        `yaml:"no_value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Account != "" && len(raw.Accounts) > 0 {
		return fmt.Errorf("line %d: declares both account and accounts", node.Line)
	}
	if raw.Account != "" {
		l.Accounts = []string{raw.Account}
	} else {
		l.Accounts = raw.Accounts
	}
	l.Splits = raw.Splits
	l.NoValue = raw.NoValue
	return nil
}

func (s *SplitSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Account  string    `yaml:"account"`
		Fraction yaml.Node `yaml:"fraction"`
		Value    yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Account == "" {
		return fmt.Errorf("line %d: split requires an account", node.Line)
	}
	s.Account = raw.Account

	// "fraction" is the canonical key, "value" the historical alias.
	scalar := raw.Fraction
	if scalar.Kind == 0 {
		scalar = raw.Value
	}
	if scalar.Kind == 0 {
		s.Fraction = DefaultSplitFraction
		return nil
	}

	fraction, err := decimal.NewFromString(scalar.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid split fraction %q", scalar.Line, scalar.Value)
	}
	if fraction.Abs().GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("line %d: split fraction %s outside [-1, 1]", scalar.Line, fraction)
	}
	s.Fraction = fraction
	return nil
}
