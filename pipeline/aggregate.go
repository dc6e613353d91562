package pipeline

import (
	"strings"

	"punchclock/timecard"
)

// DefaultExcludedProjects are the project names treated as non-work markers.
// An interval starting on one of these only marks a boundary; its minutes are
// dropped, not redistributed.
var DefaultExcludedProjects = []string{"home", "lunch"}

// Aggregator sums interval minutes per (project, task) pair within a day,
// skipping excluded projects.
type Aggregator struct {
	excluded map[string]struct{}
}

// NewAggregator builds an aggregator excluding the given project names
// case-insensitively. With no names it falls back to the defaults.
func NewAggregator(excludedProjects []string) *Aggregator {
	if len(excludedProjects) == 0 {
		excludedProjects = DefaultExcludedProjects
	}
	excluded := make(map[string]struct{}, len(excludedProjects))
	for _, name := range excludedProjects {
		excluded[strings.ToLower(name)] = struct{}{}
	}
	return &Aggregator{excluded: excluded}
}

// Aggregate folds one day's intervals into summary entries. The exclusion
// check is case-insensitive; the (project, task) grouping is exact-match.
// Emission order is first appearance within the day.
func (a *Aggregator) Aggregate(intervals []timecard.Interval) []timecard.SummaryEntry {
	summaries := make([]timecard.SummaryEntry, 0, len(intervals))
	index := make(map[[2]string]int, len(intervals))

	for _, interval := range intervals {
		if _, skip := a.excluded[strings.ToLower(interval.Project)]; skip {
			continue
		}

		key := [2]string{interval.Project, interval.Task}
		if at, seen := index[key]; seen {
			summaries[at].Minutes += interval.Minutes
			continue
		}

		index[key] = len(summaries)
		summaries = append(summaries, timecard.SummaryEntry{
			Date:    interval.Date,
			Project: interval.Project,
			Task:    interval.Task,
			Minutes: interval.Minutes,
		})
	}

	return summaries
}
