package entry

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultCurrencyColumn is the column (1-indexed) at which currency codes
	// are aligned in serialized output.
	DefaultCurrencyColumn = 90

	// DefaultIndentation is the number of spaces before a posting's account.
	DefaultIndentation = 4

	// MinimumSpacing is the minimum gap between an account name and its amount.
	MinimumSpacing = 2
)

// Formatter serializes a finished transaction to canonical journal syntax:
// a "DATE FLAG \"PAYEE\" \"NARRATION\"" header line followed by one indented
// posting line per posting, amounts right-aligned so each currency starts at
// the configured column. Postings without an amount render the account alone.
type Formatter struct {
	// CurrencyColumn is the 1-indexed column at which currencies are aligned.
	CurrencyColumn int

	// Indentation is the number of spaces before each posting's account.
	Indentation int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithCurrencyColumn sets the column at which currencies are aligned.
func WithCurrencyColumn(col int) Option {
	return func(f *Formatter) {
		f.CurrencyColumn = col
	}
}

// WithIndentation sets the posting indentation width.
func WithIndentation(n int) Option {
	return func(f *Formatter) {
		f.Indentation = n
	}
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		CurrencyColumn: DefaultCurrencyColumn,
		Indentation:    DefaultIndentation,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format renders the transaction. The result always ends with a newline and
// contains no blank lines; spacing between entries is the inserter's concern.
func (f *Formatter) Format(t *Transaction) string {
	var buf strings.Builder

	buf.WriteString(t.Date.Format("2006-01-02"))
	buf.WriteByte(' ')
	buf.WriteString(string(t.Flag))
	buf.WriteByte(' ')
	if t.Payee != "" {
		buf.WriteByte('"')
		buf.WriteString(escapeString(t.Payee))
		buf.WriteString(`" `)
	}
	buf.WriteByte('"')
	buf.WriteString(escapeString(t.Narration))
	buf.WriteByte('"')
	if t.Tag != "" {
		buf.WriteString(" #")
		buf.WriteString(t.Tag)
	}
	buf.WriteByte('\n')

	indent := strings.Repeat(" ", f.Indentation)
	for _, p := range t.Postings {
		buf.WriteString(indent)
		buf.WriteString(p.Account)

		if p.Amount != nil {
			value := p.Amount.Value.StringFixed(2)

			// Pad so the currency code begins at CurrencyColumn. Display
			// width, not byte length; account names may contain wide runes.
			used := f.Indentation + runewidth.StringWidth(p.Account) + len(value) + 1
			pad := f.CurrencyColumn - 1 - used
			if pad < MinimumSpacing {
				pad = MinimumSpacing
			}

			buf.WriteString(strings.Repeat(" ", pad))
			buf.WriteString(value)
			buf.WriteByte(' ')
			buf.WriteString(p.Amount.Currency)
		}

		buf.WriteByte('\n')
	}

	return buf.String()
}

// escapeString escapes double quotes and backslashes for quoted journal strings.
func escapeString(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2)
	for _, c := range s {
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(c)
		}
	}

	return buf.String()
}
