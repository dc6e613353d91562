package timecard

import "time"

// Canonical formats emitted by validation and consumed by extraction.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// RawEntry is one unvalidated log row exactly as the user typed it.
// Any field may be empty.
type RawEntry struct {
	Date    string `json:"date"`
	Project string `json:"project"`
	Task    string `json:"task"`
	Start   string `json:"start"`
}

// IsBlank reports whether every field is empty. Blank rows are UI filler
// and are skipped before validation.
func (r RawEntry) IsBlank() bool {
	return r.Date == "" && r.Project == "" && r.Task == "" && r.Start == ""
}

// NormalizedEntry is a validated entry with date and start time rewritten
// in canonical form. Task is passed through unmodified and may be empty.
type NormalizedEntry struct {
	Date    string `json:"date"`
	Project string `json:"project"`
	Task    string `json:"task"`
	Start   string `json:"start"`
}

// Raw converts a normalized entry back into a raw row, e.g. when a stored
// batch is re-fed through the pipeline on startup.
func (n NormalizedEntry) Raw() RawEntry {
	return RawEntry{Date: n.Date, Project: n.Project, Task: n.Task, Start: n.Start}
}

// ValidationResult is the outcome of validating one raw entry. A result with
// no errors carries the normalized entry; otherwise it retains the original
// raw input alongside the ordered error messages so the row can be
// redisplayed for correction.
type ValidationResult struct {
	Entry  NormalizedEntry `json:"entry,omitzero"`
	Raw    RawEntry        `json:"raw,omitzero"`
	Errors []string        `json:"errors,omitempty"`
}

func (v ValidationResult) IsValid() bool {
	return len(v.Errors) == 0
}

// Interval is the span between one entry's start and the next entry's start
// on the same day, attributed to the project/task of the starting entry.
type Interval struct {
	Date    string
	Project string
	Task    string
	Start   time.Time
	End     time.Time
	Minutes int
}

// SummaryEntry is the total minutes for one (day, project, task) combination.
type SummaryEntry struct {
	Date    string `json:"date"`
	Project string `json:"project"`
	Task    string `json:"task"`
	Minutes int    `json:"minutes"`
}
