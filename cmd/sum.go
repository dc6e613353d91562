package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchclock/importer"
	"punchclock/output"
	"punchclock/timecard"
)

var (
	sumInputs []string
	sumFormat string
	sumDBPath string
)

var sumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Run the full pipeline and print the summary table",
	Long: `Validate a batch of entries, pair consecutive check-ins into intervals, and
print per-day project/task totals.

With --input the batch comes from files; without it the last stored batch is
used. Summaries are produced only when every row in the batch is valid and at
least two entries exist; otherwise the validation results are printed and the
summary is withheld. A cleanly validated file batch replaces the stored one.`,
	Example: `
  # Summarize entry files
  punchclock sum -i week34.csv

  # Summarize the last stored batch
  punchclock sum

  # Use an explicit store location
  punchclock sum --db ./punchclock.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pipe, cfg, err := pipelineFromConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg, sumDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var entries []timecard.RawEntry
		fromFiles := len(sumInputs) > 0
		if fromFiles {
			result, readErr := importer.ReadEntries(sumInputs, sumFormat)
			if readErr != nil {
				return readErr
			}
			entries = result.Entries
		} else {
			entries, err = store.LoadBatch(batchName(cfg))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No stored batch. Provide entry files with --input.")
				return nil
			}
		}

		run, err := pipe.Run(entries)
		if err != nil {
			return err
		}

		if !run.Aggregated {
			if err := output.WriteValidationResults(os.Stdout, run.Validated); err != nil {
				return err
			}
			fmt.Println("Summary withheld: the batch must be fully valid and hold at least 2 entries.")
			return nil
		}

		if fromFiles {
			if normalized := run.Entries(); normalized != nil {
				if err := store.SaveBatch(batchName(cfg), normalized); err != nil {
					return err
				}
			}
		}

		return output.WriteSummaryTable(os.Stdout, run.Summaries)
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().StringArrayVarP(&sumInputs, "input", "i", nil, "Input file path (repeatable; omit to use the stored batch)")
	sumCmd.Flags().StringVarP(&sumFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	sumCmd.Flags().StringVar(&sumDBPath, "db", "", "Path to local SQLite store (overrides config)")
}
