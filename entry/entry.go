// Package entry provides the draft transaction model used while composing a
// new journal entry: decimal amount parsing, an incremental Builder that
// assembles a transaction field by field, split derivation, and canonical
// serialization of the finished entry to journal syntax.
//
// A draft is mutable only through the Builder. Finalize returns an immutable
// Transaction that can be serialized and handed to the journal package for
// insertion.
package entry

import (
	"time"
)

// Flag indicates the completion status of a transaction.
type Flag string

const (
	// FlagComplete marks a cleared transaction ('*').
	FlagComplete Flag = "*"

	// FlagPending marks a transaction that has not cleared yet ('!').
	FlagPending Flag = "!"
)

// Posting is a single account leg of a transaction. A nil Amount means the
// value is left for the balancing engine to infer; at most one posting per
// transaction should omit its amount, but that convention is not enforced
// here. The absence is only recorded.
type Posting struct {
	Account string
	Amount  *Amount
}

// Transaction is a finished, immutable draft ready for serialization.
// Posting order is preserved verbatim into the output.
type Transaction struct {
	Date      time.Time
	Flag      Flag
	Payee     string
	Narration string
	Tag       string
	Postings  []Posting
}
