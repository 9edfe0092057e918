package journal

import "fmt"

// ScanError reports journal text that could not be segmented into dated
// transaction spans.
type ScanError struct {
	Line    int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// InsertionError reports that a target file could not be prepared for
// insertion. No write is performed when this is returned; the original text
// is left untouched.
type InsertionError struct {
	Err error
}

func (e *InsertionError) Error() string {
	return fmt.Sprintf("cannot determine insertion point: %v", e.Err)
}

func (e *InsertionError) Unwrap() error {
	return e.Err
}
