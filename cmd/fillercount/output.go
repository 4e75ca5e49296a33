package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fillercount/internal/config"
	"fillercount/internal/counter"
	"fillercount/internal/services"
	"fillercount/internal/textutil"
)

const separatorWidth = 40

type outcomeRenderer interface {
	report(counter.Outcome)
	flush() error
}

func newRenderer(format string, out io.Writer, colorize bool, runID string) outcomeRenderer {
	switch format {
	case config.FormatTable:
		return &tableRenderer{out: out, colorize: colorize}
	case config.FormatJSON:
		return &jsonRenderer{out: out, runID: runID}
	default:
		return &textRenderer{out: out, colorize: colorize}
	}
}

// textRenderer streams one block per show as soon as it is processed.
type textRenderer struct {
	out      io.Writer
	colorize bool
	err      error
}

func (r *textRenderer) report(outcome counter.Outcome) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, formatTextOutcome(outcome, r.colorize))
}

func (r *textRenderer) flush() error {
	return r.err
}

func formatTextOutcome(outcome counter.Outcome, colorize bool) string {
	var b strings.Builder
	switch {
	case outcome.Err == nil && outcome.Result != nil:
		result := outcome.Result
		fmt.Fprintf(&b, "%s:\n", outcome.Request.Label())
		fmt.Fprintf(&b, "\tFiller count:\t%d\n", result.Filler.Count)
		fmt.Fprintf(&b, "\tCanon count:\t%d\n", result.Canon.Count)
		fmt.Fprintf(&b, "\tTotal count:\t%d\n", result.Total())
	case outcome.Status() == services.OutcomeNotFound:
		b.WriteString(failureText(fmt.Sprintf("Could not find '%s'!", showName(outcome.Request)), colorize))
		b.WriteByte('\n')
	default:
		b.WriteString(failureText(fmt.Sprintf("Error processing '%s': %v", outcome.Request.Arg, outcome.Err), colorize))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteString("\n\n")
	return b.String()
}

// tableRenderer collects outcomes and renders them as one table.
type tableRenderer struct {
	out      io.Writer
	colorize bool
	rows     [][]string
}

func (r *tableRenderer) report(outcome counter.Outcome) {
	r.rows = append(r.rows, tableRow(outcome, r.colorize))
}

func (r *tableRenderer) flush() error {
	headers := []string{"Show", "Episodes", "Filler", "Canon", "Total", "Status", "Notes"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft}
	_, err := fmt.Fprintln(r.out, renderTable(headers, r.rows, aligns))
	return err
}

func tableRow(outcome counter.Outcome, colorize bool) []string {
	episodes := textutil.Ternary(outcome.Request.Bound.IsZero(), "all", outcome.Request.Bound.Label())
	status := string(outcome.Status())
	if outcome.Err != nil || outcome.Result == nil {
		return []string{
			showName(outcome.Request), episodes, "-", "-", "-",
			failureText(status, colorize), errorText(outcome.Err),
		}
	}
	result := outcome.Result
	return []string{
		showName(outcome.Request),
		episodes,
		strconv.Itoa(result.Filler.Count),
		strconv.Itoa(result.Canon.Count),
		strconv.Itoa(result.Total()),
		status,
		tallyNotes(result),
	}
}

func tallyNotes(result *counter.Result) string {
	var notes []string
	for _, tally := range []counter.Tally{result.Filler, result.Canon} {
		if !tally.Present {
			notes = append(notes, "no "+tally.Category+" list")
			continue
		}
		if !tally.WellFormed {
			notes = append(notes, "malformed "+tally.Category+" list")
		}
	}
	return strings.Join(notes, "; ")
}

func showName(req counter.Request) string {
	return textutil.Ternary(req.Show != "", req.Show, req.Arg)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
