package main

import (
	"errors"
	"strings"
	"testing"

	"fillercount/internal/counter"
	"fillercount/internal/services"
)

func TestFormatTextOutcomeFailures(t *testing.T) {
	notFound := counter.Outcome{
		Request: counter.Request{Arg: "bleach:3", Show: "bleach"},
		Err:     services.Wrap(services.ErrNotFound, "bleach", "fetch page", "status 404", nil),
	}
	got := formatTextOutcome(notFound, false)
	if !strings.HasPrefix(got, "Could not find 'bleach'!\n") {
		t.Fatalf("unexpected not-found block: %q", got)
	}

	failed := counter.Outcome{
		Request: counter.Request{Arg: "bleach"},
		Err:     errors.New("boom"),
	}
	got = formatTextOutcome(failed, false)
	want := "Error processing 'bleach': boom\n" + strings.Repeat("-", 40) + "\n\n"
	if got != want {
		t.Fatalf("unexpected error block: %q", got)
	}
}

func TestTableRowFailureUsesArgWhenShowUnknown(t *testing.T) {
	row := tableRow(counter.Outcome{Request: counter.Request{Arg: ":3"}, Err: errors.New("bad")}, false)
	if row[0] != ":3" || row[2] != "-" || row[6] != "bad" {
		t.Fatalf("unexpected row: %v", row)
	}
}
