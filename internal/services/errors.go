package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrFetch         = errors.New("fetch failure")
	ErrFormat        = errors.New("format error")
	ErrArgument      = errors.New("argument error")
	ErrConfiguration = errors.New("configuration error")
)

// Outcome labels a processed show for reports and logs.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeFetchError    Outcome = "fetch_error"
	OutcomeFormatError   Outcome = "format_error"
	OutcomeArgumentError Outcome = "argument_error"
	OutcomeError         Outcome = "error"
)

// Wrap builds an error message that includes show context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, show, operation, message string, err error) error {
	detail := buildDetail(show, operation, message)
	if marker == nil {
		marker = ErrFetch
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps an error returned while processing a show to its outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrArgument):
		return OutcomeArgumentError
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrFormat):
		return OutcomeFormatError
	case errors.Is(err, ErrFetch):
		return OutcomeFetchError
	default:
		return OutcomeError
	}
}

func buildDetail(show, operation, message string) string {
	parts := make([]string, 0, 3)
	if show = strings.TrimSpace(show); show != "" {
		parts = append(parts, show)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
