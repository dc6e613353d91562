package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"punchclock/timecard"
)

// DisplayHours renders minutes as decimal hours truncated to at most two
// fractional digits. Truncation, not rounding: the stored unit is always
// minutes and the hour value is display-only.
func DisplayHours(minutes int) string {
	hours := strconv.FormatFloat(float64(minutes)/60.0, 'f', -1, 64)
	if idx := strings.Index(hours, "."); idx != -1 && len(hours) > idx+3 {
		return hours[:idx+3]
	}
	return hours
}

// SortSummaries orders summaries for display: date, then project, then task.
func SortSummaries(summaries []timecard.SummaryEntry) []timecard.SummaryEntry {
	sorted := append([]timecard.SummaryEntry(nil), summaries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		if sorted[i].Project != sorted[j].Project {
			return sorted[i].Project < sorted[j].Project
		}
		return sorted[i].Task < sorted[j].Task
	})
	return sorted
}

// WriteSummaryTable prints summaries as an aligned text table.
func WriteSummaryTable(w io.Writer, summaries []timecard.SummaryEntry) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No summaries.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tPROJECT\tTASK\tMINUTES\tHOURS")

	total := 0
	for _, summary := range SortSummaries(summaries) {
		total += summary.Minutes
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			summary.Date,
			summary.Project,
			summary.Task,
			summary.Minutes,
			DisplayHours(summary.Minutes),
		)
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%d\t%s\n", total, DisplayHours(total))

	return tw.Flush()
}
