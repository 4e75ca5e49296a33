package episodes

import "fmt"

// FormatError reports episode text or bound values that violate the expected
// grammar.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("episode format: %s", e.Reason)
	}
	return fmt.Sprintf("episode format: %s: %q", e.Reason, e.Input)
}

func formatErrorf(input, format string, args ...any) *FormatError {
	return &FormatError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
