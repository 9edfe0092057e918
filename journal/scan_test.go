package journal

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

const sample = `; personal journal

2020-06-01 * "Kamps Backstube" "Breakfast rolls"
    Expenses:Food:Groceries                 3.45 EUR
    Assets:Checking

2020-06-20 ! "Transfer"
    Assets:Savings                        100.00 EUR
    Assets:Checking
`

func TestScan(t *testing.T) {
	txns, err := Scan(sample)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(txns))

	first := txns[0]
	assert.Equal(t, "2020-06-01", first.Date.Format("2006-01-02"))
	assert.Equal(t, "*", first.Flag)
	assert.Equal(t, "Kamps Backstube", first.Payee)
	assert.Equal(t, "Breakfast rolls", first.Narration)
	assert.Equal(t, []string{"Expenses:Food:Groceries", "Assets:Checking"}, first.Accounts)
	assert.Equal(t, 3, first.Line)

	second := txns[1]
	assert.Equal(t, "2020-06-20", second.Date.Format("2006-01-02"))
	assert.Equal(t, "!", second.Flag)
	assert.Equal(t, "", second.Payee)
	assert.Equal(t, "Transfer", second.Narration)
	assert.Equal(t, 7, second.Line)
}

func TestScanSpansRoundTrip(t *testing.T) {
	txns, err := Scan(sample)
	assert.NoError(t, err)

	want := []string{
		"2020-06-01 * \"Kamps Backstube\" \"Breakfast rolls\"\n" +
			"    Expenses:Food:Groceries                 3.45 EUR\n" +
			"    Assets:Checking\n",
		"2020-06-20 ! \"Transfer\"\n" +
			"    Assets:Savings                        100.00 EUR\n" +
			"    Assets:Checking\n",
	}
	for i, txn := range txns {
		assert.Equal(t, want[i], sample[txn.Span.Start:txn.Span.End])
	}
}

func TestScanSkipsOtherDirectives(t *testing.T) {
	text := `2020-01-01 open Assets:Checking EUR

2020-06-01 * "Coffee"
    Expenses:Food:Coffee                    2.10 EUR
    Assets:Checking

2020-06-30 balance Assets:Checking  100.00 EUR
`
	txns, err := Scan(text)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txns))
	assert.Equal(t, "Coffee", txns[0].Narration)
}

func TestScanNoTrailingNewline(t *testing.T) {
	text := "2020-06-01 * \"Coffee\"\n    Expenses:Food:Coffee  2.10 EUR\n    Assets:Checking"

	txns, err := Scan(text)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txns))
	assert.Equal(t, len(text), txns[0].Span.End)
	assert.Equal(t, []string{"Expenses:Food:Coffee", "Assets:Checking"}, txns[0].Accounts)
}

func TestScanEscapedQuotes(t *testing.T) {
	text := "2020-06-01 * \"Joe's \\\"Diner\\\"\" \"Lunch\"\n" +
		"    Expenses:Food  10.00 EUR\n    Assets:Cash\n"

	txns, err := Scan(text)
	assert.NoError(t, err)
	assert.Equal(t, `Joe's "Diner"`, txns[0].Payee)
	assert.Equal(t, "Lunch", txns[0].Narration)
}

func TestScanEmpty(t *testing.T) {
	txns, err := Scan("")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(txns))
}

func TestScanIndentedLineOutsideTransaction(t *testing.T) {
	_, err := Scan("    Assets:Checking  1.00 EUR\n")

	var scanErr *ScanError
	assert.True(t, errors.As(err, &scanErr), "want ScanError, got %v", err)
	assert.Equal(t, 1, scanErr.Line)
}

func TestScanInvalidCalendarDate(t *testing.T) {
	_, err := Scan("2020-13-45 * \"Nope\"\n")

	var scanErr *ScanError
	assert.True(t, errors.As(err, &scanErr), "want ScanError, got %v", err)
}

func TestCheckOrder(t *testing.T) {
	text := `2020-06-01 * "A"
    Expenses:Food  1.00 EUR
    Assets:Cash

2020-05-01 * "B"
    Expenses:Food  1.00 EUR
    Assets:Cash

2020-06-02 * "C"
    Expenses:Food  1.00 EUR
    Assets:Cash
`
	txns, err := Scan(text)
	assert.NoError(t, err)

	violations := CheckOrder(txns)
	assert.Equal(t, 1, len(violations))
	assert.Equal(t, 5, violations[0].Line)
	assert.Equal(t, "2020-05-01", violations[0].Date.Format("2006-01-02"))
}

func TestCheckOrderClean(t *testing.T) {
	txns, err := Scan(sample)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(CheckOrder(txns)))
}
