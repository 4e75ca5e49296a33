package main

import (
	"encoding/json"
	"io"

	"fillercount/internal/counter"
)

type tallyJSON struct {
	Present    bool   `json:"present"`
	Text       string `json:"text"`
	WellFormed bool   `json:"well_formed"`
	Episodes   string `json:"episodes"`
	Count      int    `json:"count"`
}

type outcomeJSON struct {
	Arg           string     `json:"arg"`
	Show          string     `json:"show,omitempty"`
	Slug          string     `json:"slug,omitempty"`
	Title         string     `json:"title,omitempty"`
	Bound         string     `json:"bound,omitempty"`
	Status        string     `json:"status"`
	Error         string     `json:"error,omitempty"`
	Filler        *tallyJSON `json:"filler,omitempty"`
	Canon         *tallyJSON `json:"canon,omitempty"`
	Total         *int       `json:"total,omitempty"`
	CorrelationID string     `json:"correlation_id"`
}

// jsonRenderer collects outcomes and writes them as one indented array.
type jsonRenderer struct {
	out   io.Writer
	runID string
	items []outcomeJSON
}

func (r *jsonRenderer) report(outcome counter.Outcome) {
	r.items = append(r.items, newOutcomeJSON(outcome, r.runID))
}

func (r *jsonRenderer) flush() error {
	items := r.items
	if items == nil {
		items = []outcomeJSON{}
	}
	return writeJSON(r.out, items)
}

func newOutcomeJSON(outcome counter.Outcome, runID string) outcomeJSON {
	item := outcomeJSON{
		Arg:           outcome.Request.Arg,
		Show:          outcome.Request.Show,
		Bound:         outcome.Request.Bound.String(),
		Status:        string(outcome.Status()),
		Error:         errorText(outcome.Err),
		CorrelationID: runID,
	}
	if result := outcome.Result; result != nil && outcome.Err == nil {
		item.Slug = result.Slug
		item.Title = result.Title
		item.Filler = newTallyJSON(result.Filler)
		item.Canon = newTallyJSON(result.Canon)
		total := result.Total()
		item.Total = &total
	}
	return item
}

func newTallyJSON(tally counter.Tally) *tallyJSON {
	return &tallyJSON{
		Present:    tally.Present,
		Text:       tally.Text,
		WellFormed: tally.WellFormed,
		Episodes:   tally.Episodes.String(),
		Count:      tally.Count,
	}
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
