package entry

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormat(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Payee:     "Kamps Backstube",
		Narration: "Breakfast rolls",
		Postings: []Posting{
			{Account: "Expenses:Food:Groceries", Amount: NewAmount("3.45", "EUR")},
			{Account: "Assets:Checking"},
		},
	}

	got := NewFormatter(WithCurrencyColumn(40)).Format(txn)
	want := strings.Join([]string{
		`2020-06-14 * "Kamps Backstube" "Breakfast rolls"`,
		"    Expenses:Food:Groceries       3.45 EUR",
		"    Assets:Checking",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatCurrencyColumn(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Narration: "Rent",
		Postings: []Posting{
			{Account: "Expenses:Home:Rent", Amount: NewAmount("-1200.00", "EUR")},
			{Account: "Assets:Checking"},
		},
	}

	got := NewFormatter().Format(txn)
	lines := strings.Split(got, "\n")

	// Currency code starts at the default column (1-indexed).
	assert.Equal(t, DefaultCurrencyColumn-1, strings.Index(lines[1], "EUR"))
}

func TestFormatMinimumSpacing(t *testing.T) {
	long := "Expenses:A:Very:Long:Account:Name:That:Overflows:The:Column:Width:Entirely"
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Narration: "n",
		Postings: []Posting{
			{Account: long, Amount: NewAmount("1.00", "EUR")},
			{Account: "Assets:Checking"},
		},
	}

	got := NewFormatter(WithCurrencyColumn(20)).Format(txn)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "    "+long+"  1.00 EUR", lines[1])
}

func TestFormatNoPayee(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagPending,
		Narration: "Bus to city",
		Postings: []Posting{
			{Account: "Expenses:Transport", Amount: NewAmount("2.80", "EUR")},
			{Account: "Assets:Cash"},
		},
	}

	got := NewFormatter().Format(txn)
	assert.Equal(t, `2020-06-14 ! "Bus to city"`, strings.Split(got, "\n")[0])
}

func TestFormatTag(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Payee:     "Airline",
		Narration: "Flights",
		Tag:       "summer-trip",
		Postings: []Posting{
			{Account: "Expenses:Travel", Amount: NewAmount("420.00", "EUR")},
			{Account: "Liabilities:CreditCard"},
		},
	}

	got := NewFormatter().Format(txn)
	assert.Equal(t, `2020-06-14 * "Airline" "Flights" #summer-trip`, strings.Split(got, "\n")[0])
}

func TestFormatEscapesQuotes(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Payee:     `Joe's "Diner"`,
		Narration: `back\slash`,
		Postings: []Posting{
			{Account: "Expenses:Food", Amount: NewAmount("10.00", "EUR")},
			{Account: "Assets:Cash"},
		},
	}

	got := NewFormatter().Format(txn)
	assert.Equal(t, `2020-06-14 * "Joe's \"Diner\"" "back\\slash"`, strings.Split(got, "\n")[0])
}

func TestFormatEndsWithSingleNewline(t *testing.T) {
	txn := &Transaction{
		Date:      date(t, "2020-06-14"),
		Flag:      FlagComplete,
		Narration: "n",
		Postings: []Posting{
			{Account: "Expenses:Food", Amount: NewAmount("1.00", "EUR")},
			{Account: "Assets:Cash"},
		},
	}

	got := NewFormatter().Format(txn)
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}
