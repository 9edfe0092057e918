package match

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      int
	}{
		{name: "identical", query: "BA", candidate: "BA", want: 100},
		{name: "case insensitive", query: "ba", candidate: "BA", want: 100},
		{name: "whitespace ignored", query: " BA ", candidate: "BA", want: 100},
		{name: "disjoint", query: "xyz", candidate: "BA", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.query, tt.candidate))
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	// Closer strings score higher; exact bounds are the metric's business.
	near := Score("Kamps", "Kamps Backstube")
	far := Score("Kamps", "Bamberg Bridge")
	assert.True(t, near > far, "near=%d far=%d", near, far)
}

func TestMatchExactUnique(t *testing.T) {
	corpus := []string{"BA", "Bamberg Bridge", "Kamps Backstube"}

	result := Match("BA", corpus, DefaultConfig())
	assert.Equal(t, "BA", result.ExactUnique)
	assert.Equal(t, 0, len(result.Candidates))
}

func TestMatchExactUniqueCaseInsensitive(t *testing.T) {
	corpus := []string{"Kamps Backstube", "Bamberg Bridge"}

	for _, query := range []string{"kamps backstube", "KAMPS BACKSTUBE", "Kamps Backstube"} {
		result := Match(query, corpus, DefaultConfig())
		assert.Equal(t, "Kamps Backstube", result.ExactUnique, "query %q", query)
	}
}

func TestMatchNoDominantWithCloseRunnerUp(t *testing.T) {
	// Two near-identical entries dispute the hit; the user must choose.
	corpus := []string{"Expenses:Food:Restaurant", "Expenses:Food:Restaurants"}

	result := Match("Expenses:Food:Restaurant", corpus, DefaultConfig())
	assert.Equal(t, "", result.ExactUnique)
	assert.Equal(t, 2, len(result.Candidates))
	assert.Equal(t, "Expenses:Food:Restaurant", result.Candidates[0].Value)
}

func TestMatchNoMatch(t *testing.T) {
	corpus := []string{"Expenses:Food", "Assets:Checking"}

	result := Match("zzzzzz", corpus, DefaultConfig())
	assert.Equal(t, "", result.ExactUnique)
	assert.Equal(t, 0, len(result.Candidates))
}

func TestMatchEmptyCorpus(t *testing.T) {
	result := Match("anything", nil, DefaultConfig())
	assert.Equal(t, "", result.ExactUnique)
	assert.Equal(t, 0, len(result.Candidates))
}

func TestMatchThresholdMonotonicity(t *testing.T) {
	corpus := []string{
		"Expenses:Food:Groceries",
		"Expenses:Food:Restaurant",
		"Expenses:Transport",
		"Assets:Checking",
		"Liabilities:CreditCard",
	}

	cfg := DefaultConfig()
	cfg.MaxCandidates = len(corpus)

	prev := len(corpus) + 1
	for threshold := 0; threshold <= 100; threshold += 10 {
		cfg.Threshold = threshold
		result := Match("Expenses:Food", corpus, cfg)

		count := len(result.Candidates)
		if result.ExactUnique != "" {
			count = 1
		}
		assert.True(t, count <= prev, "threshold %d: count %d > previous %d", threshold, count, prev)
		prev = count
	}
}

func TestMatchDeterministicTieBreak(t *testing.T) {
	// Disjoint entries all score zero; ties fall back to alphabetical order
	// regardless of corpus order.
	corpus := []string{"Ccc", "Aaa", "Bbb"}

	cfg := Config{Threshold: 0, MaxCandidates: 10}
	result := Match("xyz", corpus, cfg)
	assert.Equal(t, []string{"Aaa", "Bbb", "Ccc"}, result.Values())

	again := Match("xyz", corpus, cfg)
	assert.Equal(t, result, again)
}

func TestMatchMaxCandidates(t *testing.T) {
	corpus := []string{
		"Expenses:Food:A", "Expenses:Food:B", "Expenses:Food:C",
		"Expenses:Food:D", "Expenses:Food:E", "Expenses:Food:F",
	}

	cfg := Config{Threshold: 0, MaxCandidates: 5}
	result := Match("Expenses:Food", corpus, cfg)
	assert.Equal(t, 5, len(result.Candidates))
}

func TestResolve(t *testing.T) {
	corpus := []string{"BA", "Bamberg Bridge", "Kamps Backstube"}

	t.Run("exact unique", func(t *testing.T) {
		value, err := Resolve("BA", corpus, DefaultConfig())
		assert.NoError(t, err)
		assert.Equal(t, "BA", value)
	})

	t.Run("ambiguous", func(t *testing.T) {
		dup := []string{"Expenses:Food:Restaurant", "Expenses:Food:Restaurants"}
		_, err := Resolve("Expenses:Food:Restaurant", dup, DefaultConfig())

		var ambiguous *AmbiguousMatchError
		assert.True(t, errors.As(err, &ambiguous), "want AmbiguousMatchError, got %v", err)
		assert.Equal(t, 2, len(ambiguous.Candidates))
	})

	t.Run("no match", func(t *testing.T) {
		_, err := Resolve("zzzzzz", corpus, DefaultConfig())

		var noMatch *NoMatchError
		assert.True(t, errors.As(err, &noMatch), "want NoMatchError, got %v", err)
		assert.Equal(t, "zzzzzz", noMatch.Query)
	})
}
