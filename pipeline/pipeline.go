// Package pipeline validates raw time-log rows, pairs consecutive check-ins
// into intervals, and sums them into per-day project/task totals. Every stage
// is a pure transform over in-memory values; callers own all input and output
// collections.
package pipeline

import "punchclock/timecard"

// Result is the outcome of one pipeline run. Validated always covers every
// non-blank input row. Summaries is populated only when Aggregated is true:
// the whole batch validated cleanly and held at least two entries. A single
// bad row withholds duration output for the entire batch until corrected.
type Result struct {
	Validated  []timecard.ValidationResult
	Summaries  []timecard.SummaryEntry
	Aggregated bool
}

// Entries returns the normalized entries of a clean run, in input order.
func (r Result) Entries() []timecard.NormalizedEntry {
	entries := make([]timecard.NormalizedEntry, 0, len(r.Validated))
	for _, v := range r.Validated {
		if !v.IsValid() {
			return nil
		}
		entries = append(entries, v.Entry)
	}
	return entries
}

// Pipeline composes validation, extraction, and aggregation.
type Pipeline struct {
	aggregator *Aggregator
}

func New(excludedProjects []string) *Pipeline {
	return &Pipeline{aggregator: NewAggregator(excludedProjects)}
}

// Run processes one full batch of raw rows. Rows with every field empty are
// dropped before validation. Aggregation runs only when all remaining rows
// are valid and at least two entries exist.
func (p *Pipeline) Run(raws []timecard.RawEntry) (Result, error) {
	validated := make([]timecard.ValidationResult, 0, len(raws))
	allValid := true
	for _, raw := range raws {
		if raw.IsBlank() {
			continue
		}
		result := Validate(raw)
		allValid = allValid && result.IsValid()
		validated = append(validated, result)
	}

	result := Result{Validated: validated}
	if !allValid || len(validated) < 2 {
		return result, nil
	}

	entries := make([]timecard.NormalizedEntry, 0, len(validated))
	for _, v := range validated {
		entries = append(entries, v.Entry)
	}

	summaries, err := p.Summarize(entries)
	if err != nil {
		return result, err
	}

	result.Summaries = summaries
	result.Aggregated = true
	return result, nil
}

// Summarize runs extraction and aggregation over entries that are already
// normalized, flattening the per-day results in ascending day order.
func (p *Pipeline) Summarize(entries []timecard.NormalizedEntry) ([]timecard.SummaryEntry, error) {
	days, err := Extract(entries)
	if err != nil {
		return nil, err
	}

	summaries := make([]timecard.SummaryEntry, 0, len(entries))
	for _, intervals := range days {
		summaries = append(summaries, p.aggregator.Aggregate(intervals)...)
	}
	return summaries, nil
}
