package counter

import (
	"fmt"
	"strings"

	"fillercount/internal/episodes"
	"fillercount/internal/services"
)

const boundSeparator = ":"

// Request is one decomposed show argument.
type Request struct {
	Arg   string
	Show  string
	Bound episodes.Bound
}

// ArgumentError reports a malformed show argument.
type ArgumentError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument %q: %s: %v", e.Arg, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// Unwrap exposes both the argument marker and the underlying cause.
func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{services.ErrArgument}
	}
	return []error{services.ErrArgument, e.Err}
}

// ParseRequest splits "name", "name:lower" or "name:lower:upper" into a
// Request. It never touches the network.
func ParseRequest(arg string) (Request, error) {
	parts := strings.Split(arg, boundSeparator)
	if len(parts) > 3 {
		return Request{}, &ArgumentError{Arg: arg, Reason: fmt.Sprintf("expected at most 3 colon-separated parts, got %d", len(parts))}
	}
	show := strings.TrimSpace(parts[0])
	if show == "" {
		return Request{}, &ArgumentError{Arg: arg, Reason: "show name is empty"}
	}

	var lower, upper string
	if len(parts) > 1 {
		lower = parts[1]
	}
	if len(parts) > 2 {
		upper = parts[2]
	}
	bound, err := episodes.ParseBound(lower, upper)
	if err != nil {
		return Request{}, &ArgumentError{Arg: arg, Reason: "invalid episode bound", Err: err}
	}
	return Request{Arg: arg, Show: show, Bound: bound}, nil
}

// Label is the display name for the request, including its bound.
func (r Request) Label() string {
	if r.Bound.IsZero() {
		return r.Show
	}
	return fmt.Sprintf("%s (episodes %s)", r.Show, r.Bound.Label())
}
