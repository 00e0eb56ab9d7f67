package domain

import "fmt"

// FormatError reports malformed input: a bad shift token, week span, or date.
// It is fatal to the record being constructed.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// LookupError reports a reference to something that does not exist, such as a
// grid cell naming an unknown employee id or a day index outside the week.
// Recoverable: the caller skips the entry and continues.
type LookupError struct {
	Msg string
}

func (e *LookupError) Error() string { return e.Msg }

func lookupErrorf(format string, args ...any) *LookupError {
	return &LookupError{Msg: fmt.Sprintf(format, args...)}
}

// LayoutError reports a missing grid landmark ("Staff", "Hours", day-name row).
// Recoverable: downstream collections come out empty instead of failing.
type LayoutError struct {
	Landmark string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("landmark %q not found in grid", e.Landmark)
}
