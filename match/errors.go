package match

import "fmt"

// AmbiguousMatchError reports a query that matched several corpus entries
// above the threshold with none dominant. It is recoverable: the candidate
// list is surfaced so the caller can re-prompt with the choices.
type AmbiguousMatchError struct {
	Query      string
	Candidates []Candidate
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("query %q matches %d entries with none dominant", e.Query, len(e.Candidates))
}

// NoMatchError reports a query that matched nothing above the threshold.
// The caller must accept the raw query as a literal new value.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("query %q matches nothing", e.Query)
}
