package entry

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IncompleteTransactionError reports a Finalize call on a draft that cannot
// form a valid transaction: a transaction must carry a date and balance
// across at least two accounts.
type IncompleteTransactionError struct {
	Postings    int
	MissingDate bool
}

func (e *IncompleteTransactionError) Error() string {
	if e.MissingDate {
		return "incomplete transaction: no date set"
	}
	return fmt.Sprintf("incomplete transaction: %d posting(s), need at least 2", e.Postings)
}

// Builder assembles a draft transaction incrementally. Fields are set one by
// one as the surrounding prompt loop collects them; Finalize validates the
// draft and freezes it. The zero-value Builder starts a cleared ('*') draft.
type Builder struct {
	date      time.Time
	hasDate   bool
	payee     string
	narration string
	tag       string
	pending   bool
	postings  []Posting
}

// NewBuilder creates an empty draft builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetDate sets the transaction date.
func (b *Builder) SetDate(date time.Time) {
	b.date = midnight(date)
	b.hasDate = true
}

// SetPayee sets the payee. An empty payee is valid and omitted from output.
func (b *Builder) SetPayee(payee string) {
	b.payee = payee
}

// SetNarration sets the narration. The narration is always a string,
// possibly empty.
func (b *Builder) SetNarration(narration string) {
	b.narration = narration
}

// SetTag attaches a tag, rendered as #TAG on the header line.
func (b *Builder) SetTag(tag string) {
	b.tag = tag
}

// SetPending marks the draft as not yet cleared ('!').
func (b *Builder) SetPending() {
	b.pending = true
}

// AddPosting appends a posting. A nil amount records an inferred value.
func (b *Builder) AddPosting(account string, amount *Amount) {
	b.postings = append(b.postings, Posting{Account: account, Amount: amount})
}

// FirstAmount returns the first posting's amount, or nil if there is none.
// Splits are always derived from the first posting.
func (b *Builder) FirstAmount() *Amount {
	if len(b.postings) == 0 {
		return nil
	}
	return b.postings[0].Amount
}

// AddSplit appends a posting whose amount is a fraction of the first
// posting's amount. Zero-valued results are skipped, mirroring how a split
// of nothing carries no information. Reports whether a posting was added.
func (b *Builder) AddSplit(account string, fraction decimal.Decimal) bool {
	base := b.FirstAmount()
	if base == nil {
		return false
	}

	derived := Split(base, fraction)
	if derived.Value.IsZero() {
		return false
	}

	b.AddPosting(account, derived)
	return true
}

// Len returns the number of postings added so far.
func (b *Builder) Len() int {
	return len(b.postings)
}

// Finalize validates the draft and returns the immutable transaction.
// It fails with *IncompleteTransactionError when the date is missing or
// fewer than two postings have been added; the builder is left untouched so
// the caller can correct the draft and retry.
func (b *Builder) Finalize() (*Transaction, error) {
	if !b.hasDate {
		return nil, &IncompleteTransactionError{Postings: len(b.postings), MissingDate: true}
	}
	if len(b.postings) < 2 {
		return nil, &IncompleteTransactionError{Postings: len(b.postings)}
	}

	flag := FlagComplete
	if b.pending {
		flag = FlagPending
	}

	postings := make([]Posting, len(b.postings))
	copy(postings, b.postings)

	return &Transaction{
		Date:      b.date,
		Flag:      flag,
		Payee:     b.payee,
		Narration: b.narration,
		Tag:       b.tag,
		Postings:  postings,
	}, nil
}
