package episodes_test

import (
	"errors"
	"testing"

	"fillercount/internal/episodes"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		lower, upper string
		want         episodes.Bound
		text         string
		label        string
	}{
		{lower: "", upper: "", want: episodes.Bound{}, text: "", label: ""},
		{lower: "3", upper: "", want: episodes.AtLeast(3), text: "3:", label: "3+"},
		{lower: "", upper: "8", want: episodes.AtMost(8), text: ":8", label: "1-8"},
		{lower: " 3 ", upper: "8", want: episodes.Bound{Lower: 3, Upper: 8, HasLower: true, HasUpper: true}, text: "3:8", label: "3-8"},
		{lower: "4", upper: "4", want: episodes.Bound{Lower: 4, Upper: 4, HasLower: true, HasUpper: true}, text: "4:4", label: "4-4"},
	}
	for _, tc := range tests {
		got, err := episodes.ParseBound(tc.lower, tc.upper)
		if err != nil {
			t.Fatalf("ParseBound(%q, %q) returned error: %v", tc.lower, tc.upper, err)
		}
		if got != tc.want {
			t.Fatalf("ParseBound(%q, %q) = %+v, want %+v", tc.lower, tc.upper, got, tc.want)
		}
		if got.String() != tc.text {
			t.Fatalf("unexpected String: got %q want %q", got.String(), tc.text)
		}
		if got.Label() != tc.label {
			t.Fatalf("unexpected Label: got %q want %q", got.Label(), tc.label)
		}
	}
}

func TestParseBoundRejects(t *testing.T) {
	cases := [][2]string{{"10", "5"}, {"x", ""}, {"", "1.5"}, {"-1", ""}}
	for _, c := range cases {
		_, err := episodes.ParseBound(c[0], c[1])
		var formatErr *episodes.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("ParseBound(%q, %q): expected FormatError, got %v", c[0], c[1], err)
		}
	}
}

func TestBetweenRejectsInvertedBounds(t *testing.T) {
	if _, err := episodes.Between(10, 5); err == nil {
		t.Fatal("expected error for inverted bound")
	}
}
