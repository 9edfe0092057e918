// Package cli implements the pinto command set: composing transactions
// interactively and keeping the journal searchable and date-ordered.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
	draftStyle   = lipgloss.NewStyle().Bold(true)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
