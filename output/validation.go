package output

import (
	"fmt"
	"io"
	"strings"

	"punchclock/timecard"
)

// WriteValidationResults prints one line per row: the canonical entry for
// valid rows, the original input plus its error list for invalid ones.
func WriteValidationResults(w io.Writer, results []timecard.ValidationResult) error {
	for i, result := range results {
		if result.IsValid() {
			entry := result.Entry
			if _, err := fmt.Fprintf(w, "row %d: ok %s %s %s/%s\n", i+1, entry.Date, entry.Start, entry.Project, entry.Task); err != nil {
				return err
			}
			continue
		}

		raw := result.Raw
		if _, err := fmt.Fprintf(w, "row %d: %s (date=%q project=%q task=%q start=%q)\n",
			i+1,
			strings.Join(result.Errors, ", "),
			raw.Date,
			raw.Project,
			raw.Task,
			raw.Start,
		); err != nil {
			return err
		}
	}
	return nil
}
