package csvimport

import "fmt"

// ParseError reports a malformed CSV batch. The whole batch is discarded;
// rows decoded before the failing line are never returned.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
