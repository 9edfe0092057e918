package journal

import (
	"strings"
	"time"
)

// Insert splices a serialized entry into journal text at the date-ordered
// position: immediately before the first existing transaction whose date is
// strictly greater than date, separated by exactly one blank line on each
// side, or appended at end-of-file when no later transaction exists. Every
// byte outside the insertion point is preserved unmodified, so repeated
// out-of-order insertions converge to a fully date-sorted file.
//
// entryText must be the canonical serialization of a single entry, newline
// terminated and free of blank lines (see entry.Formatter).
func Insert(text string, txns []Transaction, entryText string, date time.Time) string {
	for _, txn := range txns {
		if txn.Date.After(date) {
			return insertBefore(text, txn.Span.Start, entryText)
		}
	}
	return appendEntry(text, entryText)
}

// InsertText scans the target text itself and splices the entry. Scan
// failures surface as *InsertionError with nothing applied.
func InsertText(text string, entryText string, date time.Time) (string, error) {
	txns, err := Scan(text)
	if err != nil {
		return "", &InsertionError{Err: err}
	}
	return Insert(text, txns, entryText, date), nil
}

func insertBefore(text string, pos int, entryText string) string {
	before := text[:pos]
	after := text[pos:]

	var buf strings.Builder
	buf.Grow(len(text) + len(entryText) + 2)

	buf.WriteString(before)
	if before != "" && !strings.HasSuffix(before, "\n\n") {
		if !strings.HasSuffix(before, "\n") {
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(entryText)
	buf.WriteByte('\n')
	buf.WriteString(after)

	return buf.String()
}

func appendEntry(text string, entryText string) string {
	if text == "" {
		return entryText
	}

	var buf strings.Builder
	buf.Grow(len(text) + len(entryText) + 2)

	buf.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		buf.WriteByte('\n')
	}
	if !strings.HasSuffix(buf.String(), "\n\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(entryText)

	return buf.String()
}
