package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"punchclock/timecard"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, summaries []timecard.SummaryEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "Project", "Task", "Minutes", "Hours"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, summary := range SortSummaries(summaries) {
		row := []string{
			summary.Date,
			summary.Project,
			summary.Task,
			strconv.Itoa(summary.Minutes),
			DisplayHours(summary.Minutes),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
