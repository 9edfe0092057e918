// Package match ranks corpus entries against a free-text query. It is used
// identically for payees, accounts and template labels; only the supplied
// corpus differs.
//
// Matching is a pure function of its inputs: no I/O, no corpus mutation, and
// deterministic ordering (descending score, ties broken alphabetically).
package match

import (
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/exp/slices"
)

const (
	// DefaultThreshold is the minimum score for an entry to be offered as a
	// candidate.
	DefaultThreshold = 70

	// DefaultMaxCandidates caps the number of candidates surfaced to the user.
	DefaultMaxCandidates = 5

	// nearExactCutoff is the score at or above which a single dominant entry
	// is treated as the intended value without further prompting.
	nearExactCutoff = 95

	// tieMargin is the score distance within which a runner-up disputes a
	// near-exact hit.
	tieMargin = 5
)

// Config holds the matching knobs exposed as configuration.
type Config struct {
	// Threshold is the minimum candidate score, in [0, 100].
	Threshold int

	// MaxCandidates truncates the candidate list for display.
	MaxCandidates int
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, MaxCandidates: DefaultMaxCandidates}
}

// Candidate is a corpus entry with its similarity score against the query.
type Candidate struct {
	Value string
	Score int
}

// Result is the outcome of matching a query against a corpus. When
// ExactUnique is non-empty, exactly one entry scored near-exact with no
// runner-up within the tie margin, and the caller can take it without
// prompting. Otherwise Candidates holds every entry at or above the
// threshold, best first. An empty result means the query matched nothing
// and must be treated as a literal new value.
type Result struct {
	Candidates  []Candidate
	ExactUnique string
}

// Score computes the case-insensitive similarity of query and candidate as
// a normalized edit-distance ratio in [0, 100].
func Score(query, candidate string) int {
	a := strings.ToLower(strings.TrimSpace(query))
	b := strings.ToLower(strings.TrimSpace(candidate))
	if a == b {
		return 100
	}

	sim := levenshtein.Similarity(a, b, levenshtein.NewParams())
	return int(sim*100 + 0.5)
}

// Match scores every corpus entry against the query and returns the ranked
// result. The corpus is read-only; identical inputs always produce identical
// results.
func Match(query string, corpus []string, cfg Config) Result {
	scored := make([]Candidate, 0, len(corpus))
	for _, value := range corpus {
		scored = append(scored, Candidate{Value: value, Score: Score(query, value)})
	}

	slices.SortFunc(scored, func(a, b Candidate) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Value, b.Value)
	})

	if len(scored) > 0 && scored[0].Score >= nearExactCutoff {
		if len(scored) == 1 || scored[0].Score-scored[1].Score > tieMargin {
			return Result{ExactUnique: scored[0].Value}
		}
	}

	var candidates []Candidate
	for _, c := range scored {
		if c.Score < cfg.Threshold {
			break
		}
		candidates = append(candidates, c)
		if len(candidates) == cfg.MaxCandidates {
			break
		}
	}

	return Result{Candidates: candidates}
}

// Resolve matches the query and collapses the result into a single value or
// a typed error: *AmbiguousMatchError carries the candidate list for
// re-prompting, *NoMatchError tells the caller to accept the literal query.
func Resolve(query string, corpus []string, cfg Config) (string, error) {
	result := Match(query, corpus, cfg)

	if result.ExactUnique != "" {
		return result.ExactUnique, nil
	}
	if len(result.Candidates) > 0 {
		return "", &AmbiguousMatchError{Query: query, Candidates: result.Candidates}
	}
	return "", &NoMatchError{Query: query}
}

// Values returns just the candidate strings, best first.
func (r Result) Values() []string {
	values := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		values[i] = c.Value
	}
	return values
}
