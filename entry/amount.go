package entry

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value with its currency code. Values are decimals to
// preserve exact cents; never floats.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount creates an Amount from a decimal string and currency code.
// It panics on an invalid value; use ParseAmount for user input.
func NewAmount(value, currency string) *Amount {
	return &Amount{Value: decimal.RequireFromString(value), Currency: currency}
}

// String renders the amount as "VALUE CURRENCY" with two decimal places.
func (a *Amount) String() string {
	return a.Value.StringFixed(2) + " " + a.Currency
}

// ParseAmount parses user input of the form "<value> <currency>", e.g.
// "-12.34 EUR". Empty input is accepted and recorded as an absent amount
// (nil, nil) so the balancing engine can infer the value later.
func ParseAmount(input string) (*Amount, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	fields := strings.Fields(input)
	if len(fields) != 2 {
		return nil, fmt.Errorf("invalid amount %q: must be '<value> <currency>'", input)
	}

	value, err := decimal.NewFromString(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid amount value %q: %w", fields[0], err)
	}

	currency := fields[1]
	if !isCurrency(currency) {
		return nil, fmt.Errorf("invalid currency %q", currency)
	}

	return &Amount{Value: value, Currency: currency}, nil
}

// isCurrency reports whether s looks like a currency code: uppercase letters,
// optionally followed by digits, dots, hyphens or underscores.
func isCurrency(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '.' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return true
}

// ParseFraction parses a split fraction in the range [-1, 1].
func ParseFraction(input string) (decimal.Decimal, error) {
	f, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid fraction %q: %w", input, err)
	}

	one := decimal.NewFromInt(1)
	if f.Abs().GreaterThan(one) {
		return decimal.Zero, fmt.Errorf("fraction %s must be between -1 and 1", f)
	}

	return f, nil
}

// Split derives the amount of a split posting from a base amount and a
// fraction: round(base × fraction, 2 decimal places), same currency. The
// fraction's sign is carried through the multiplication unchanged; no
// additional sign convention is applied here.
func Split(base *Amount, fraction decimal.Decimal) *Amount {
	return &Amount{
		Value:    base.Value.Mul(fraction).Round(2),
		Currency: base.Currency,
	}
}
