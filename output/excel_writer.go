package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"punchclock/timecard"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, summaries []timecard.SummaryEntry) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	headers := []string{"Date", "Project", "Task", "Minutes", "Hours"}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, summary := range SortSummaries(summaries) {
		row := i + 2
		values := []string{
			summary.Date,
			summary.Project,
			summary.Task,
			fmt.Sprintf("%d", summary.Minutes),
			DisplayHours(summary.Minutes),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
