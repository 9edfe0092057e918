// Package corpus derives the matching vocabulary from a scanned journal.
// Entries are ranked by how often they occur, most frequent first, so the
// values a user picks daily surface at the top of every candidate list.
package corpus

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/pinto/journal"
)

// Corpus holds the distinct payees, accounts and narrations seen in a
// journal, each ranked by descending frequency with alphabetical
// tie-breaking.
type Corpus struct {
	Payees     []string
	Accounts   []string
	Narrations []string
}

// Extract builds the corpus from scanned transactions. Empty fields are
// skipped; duplicates collapse into a single ranked entry.
func Extract(txns []journal.Transaction) *Corpus {
	payees := newRanking()
	accounts := newRanking()
	narrations := newRanking()

	for _, txn := range txns {
		payees.Add(txn.Payee)
		narrations.Add(txn.Narration)
		for _, account := range txn.Accounts {
			accounts.Add(account)
		}
	}

	return &Corpus{
		Payees:     payees.Ranked(),
		Accounts:   accounts.Ranked(),
		Narrations: narrations.Ranked(),
	}
}

// NarrationsFor ranks the narrations used with a specific payee, so the
// narration prompt can suggest what usually accompanies it. The comparison
// is case-insensitive.
func NarrationsFor(txns []journal.Transaction, payee string) []string {
	ranking := newRanking()
	for _, txn := range txns {
		if strings.EqualFold(txn.Payee, payee) {
			ranking.Add(txn.Narration)
		}
	}
	return ranking.Ranked()
}

// AccountsFor ranks the accounts that appear in transactions with the given
// payee, first posting first. It seeds account prompts with the accounts a
// payee historically books against.
func AccountsFor(txns []journal.Transaction, payee string) []string {
	ranking := newRanking()
	for _, txn := range txns {
		if !strings.EqualFold(txn.Payee, payee) {
			continue
		}
		for _, account := range txn.Accounts {
			ranking.Add(account)
		}
	}
	return ranking.Ranked()
}

// ranking counts occurrences and remembers first-seen order only through the
// final deterministic sort.
type ranking struct {
	counts map[string]int
}

func newRanking() *ranking {
	return &ranking{counts: make(map[string]int)}
}

func (r *ranking) Add(value string) {
	if value == "" {
		return
	}
	r.counts[value]++
}

func (r *ranking) Ranked() []string {
	values := make([]string, 0, len(r.counts))
	for value := range r.counts {
		values = append(values, value)
	}

	slices.SortFunc(values, func(a, b string) int {
		if r.counts[a] != r.counts[b] {
			return r.counts[b] - r.counts[a]
		}
		return strings.Compare(a, b)
	})

	return values
}
