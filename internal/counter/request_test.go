package counter

import (
	"errors"
	"testing"

	"fillercount/internal/episodes"
	"fillercount/internal/services"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		arg   string
		show  string
		bound string
		label string
	}{
		{arg: "naruto", show: "naruto", bound: "", label: "naruto"},
		{arg: "naruto:3", show: "naruto", bound: "3:", label: "naruto (episodes 3+)"},
		{arg: "naruto:3:8", show: "naruto", bound: "3:8", label: "naruto (episodes 3-8)"},
		{arg: "naruto::8", show: "naruto", bound: ":8", label: "naruto (episodes 1-8)"},
		{arg: "naruto::", show: "naruto", bound: "", label: "naruto"},
		{arg: "one-piece:5:5", show: "one-piece", bound: "5:5", label: "one-piece (episodes 5-5)"},
	}
	for _, tc := range tests {
		req, err := ParseRequest(tc.arg)
		if err != nil {
			t.Fatalf("ParseRequest(%q) returned error: %v", tc.arg, err)
		}
		if req.Arg != tc.arg || req.Show != tc.show {
			t.Fatalf("ParseRequest(%q) = %+v", tc.arg, req)
		}
		if req.Bound.String() != tc.bound {
			t.Fatalf("ParseRequest(%q) bound = %q, want %q", tc.arg, req.Bound.String(), tc.bound)
		}
		if req.Label() != tc.label {
			t.Fatalf("ParseRequest(%q) label = %q, want %q", tc.arg, req.Label(), tc.label)
		}
	}
}

func TestParseRequestRejects(t *testing.T) {
	for _, arg := range []string{"naruto:10:5", "naruto:1:2:3", ":3:8", "", "naruto:x", "naruto:1:y", "naruto:-2"} {
		_, err := ParseRequest(arg)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("ParseRequest(%q): expected ArgumentError, got %v", arg, err)
		}
		if !errors.Is(err, services.ErrArgument) {
			t.Fatalf("ParseRequest(%q): expected argument marker, got %v", arg, err)
		}
		if services.Classify(err) != services.OutcomeArgumentError {
			t.Fatalf("ParseRequest(%q): unexpected classification %q", arg, services.Classify(err))
		}
	}
}

func TestParseRequestInvertedBoundKeepsFormatCause(t *testing.T) {
	_, err := ParseRequest("naruto:10:5")
	var formatErr *episodes.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError cause, got %v", err)
	}
}
