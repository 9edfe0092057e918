package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// ParseDate resolves a human date expression against a reference date.
// Accepted forms, tried in order:
//
//   - ISO dates: "2020-06-14"
//   - special literals: "today", "now", "yesterday", "tomorrow"
//   - relative expressions: "in 3 weeks", "2 days ago", "next monday"
//
// The result is truncated to midnight UTC; the reference date is supplied by
// the caller so resolution never depends on the wall clock.
func ParseDate(input string, ref time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse("2006-01-02", input); err == nil {
		return t, nil
	}

	switch strings.ToLower(input) {
	case "today", "now":
		return midnight(ref), nil
	case "yesterday":
		return midnight(ref.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return midnight(ref.AddDate(0, 0, 1)), nil
	}

	t, err := naturaldate.Parse(input, ref, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", input)
	}

	return midnight(t), nil
}

// midnight truncates a time to its calendar date at midnight UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
