package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/pinto/entry"
	"github.com/robinvdvleuten/pinto/match"
)

// otherOption is the pick-list escape hatch back to free-text entry.
const otherOption = "(other)"

// promptInput asks for one free-text line, pre-filled with initial. Outside
// a terminal the initial value is taken as-is, so flag-driven invocations
// stay scriptable.
func promptInput(title, initial string) (string, error) {
	if !isTerminal() {
		return initial, nil
	}

	value := initial
	field := huh.NewInput().
		Title(title).
		Value(&value)

	if err := field.Run(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return value, nil
}

// promptSelect asks the user to pick one of the options. A selection cannot
// be made without a terminal.
func promptSelect(title string, options []string) (string, error) {
	if !isTerminal() {
		return "", commandErrorf("cannot choose between %d candidates without a terminal", len(options))
	}

	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&value)

	if err := field.Run(); err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}

	return value, nil
}

// promptEntity asks for a name and reconciles it against previously used
// values: a near-exact unique hit is taken without further questions, close
// candidates become a pick list with a free-text escape, and an unmatched
// entry is accepted literally as a new value.
func promptEntity(w io.Writer, kind, initial string, corpus []string, cfg match.Config, allowEmpty bool) (string, error) {
	title := fmt.Sprintf("Enter %s", kind)

	for {
		query, err := promptInput(title, initial)
		if err != nil {
			return "", err
		}
		if query == "" {
			if allowEmpty {
				return "", nil
			}
			if !isTerminal() {
				return "", commandErrorf("no %s given", kind)
			}
			printError(w, fmt.Sprintf("A %s is required", kind))
			continue
		}

		value, err := match.Resolve(query, corpus, cfg)
		if err == nil {
			return value, nil
		}

		var ambiguous *match.AmbiguousMatchError
		if errors.As(err, &ambiguous) {
			options := make([]string, 0, len(ambiguous.Candidates)+1)
			for _, candidate := range ambiguous.Candidates {
				options = append(options, candidate.Value)
			}
			options = append(options, otherOption)

			choice, err := promptSelect(fmt.Sprintf("Similar %ss found; pick one", kind), options)
			if err != nil {
				return "", err
			}
			if choice != otherOption {
				return choice, nil
			}
		}

		// No match, or the user declined every candidate: the query stands
		// as a new value.
		printInfof(w, "New %s %q", kind, query)
		return query, nil
	}
}

// promptDate asks for a date expression and resolves it against ref.
func promptDate(w io.Writer, initial string, ref time.Time) (time.Time, error) {
	if initial == "" {
		initial = "today"
	}

	for {
		input, err := promptInput("Enter transaction date", initial)
		if err != nil {
			return time.Time{}, err
		}

		date, err := entry.ParseDate(input, ref)
		if err == nil {
			return date, nil
		}
		if !isTerminal() {
			return time.Time{}, err
		}
		printError(w, err.Error())
	}
}

// promptAmount asks for a posting value. Empty input is a valid answer and
// yields a nil amount, to be inferred by the balancing engine.
func promptAmount(w io.Writer, initial string) (*entry.Amount, error) {
	for {
		input, err := promptInput("Enter value (e.g. 12.50 EUR, empty to infer)", initial)
		if err != nil {
			return nil, err
		}

		amount, err := entry.ParseAmount(input)
		if err == nil {
			return amount, nil
		}
		if !isTerminal() {
			return nil, err
		}
		printError(w, err.Error())
	}
}

// promptFraction asks for a split fraction in [-1, 1].
func promptFraction(w io.Writer, initial string) (decimal.Decimal, error) {
	for {
		input, err := promptInput("Choose split fraction", initial)
		if err != nil {
			return decimal.Zero, err
		}

		fraction, err := entry.ParseFraction(input)
		if err == nil {
			return fraction, nil
		}
		if !isTerminal() {
			return decimal.Zero, err
		}
		printError(w, err.Error())
	}
}
