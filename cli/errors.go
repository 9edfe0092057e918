package cli

import "fmt"

// CommandError aborts a command with a message and a specific exit code,
// bypassing kong's default error prefix.
type CommandError struct {
	Message  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return e.Message
}

func commandErrorf(format string, args ...interface{}) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...), ExitCode: 1}
}
