package output

import "punchclock/timecard"

// ProjectSlice is one segment of the per-project proportional chart.
type ProjectSlice struct {
	Project string `json:"project"`
	Minutes int    `json:"minutes"`
}

// SumByProject folds summaries into per-project minute totals in first-seen
// project order, the shape the pie chart consumes.
func SumByProject(summaries []timecard.SummaryEntry) []ProjectSlice {
	slices := make([]ProjectSlice, 0, len(summaries))
	index := make(map[string]int, len(summaries))

	for _, summary := range summaries {
		if at, seen := index[summary.Project]; seen {
			slices[at].Minutes += summary.Minutes
			continue
		}
		index[summary.Project] = len(slices)
		slices = append(slices, ProjectSlice{Project: summary.Project, Minutes: summary.Minutes})
	}

	return slices
}
