package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchclock/importer"
	"punchclock/output"
)

var (
	checkInputs []string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate entry files without summarizing",
	Long: `Read entry files and run every row through validation.

Each row reports its own field errors (project, time, date); one bad row does
not stop the others from being checked. The command exits non-zero when any
row is invalid.`,
	Example: `
  # Validate one file
  punchclock check -i week34.csv

  # Validate several files as one batch
  punchclock check -i monday.csv -i tuesday.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := importer.ReadEntries(checkInputs, checkFormat)
		if err != nil {
			return err
		}

		pipe, _, err := pipelineFromConfig()
		if err != nil {
			return err
		}

		run, err := pipe.Run(result.Entries)
		if err != nil {
			return err
		}

		if err := output.WriteValidationResults(os.Stdout, run.Validated); err != nil {
			return err
		}

		invalid := 0
		for _, v := range run.Validated {
			if !v.IsValid() {
				invalid++
			}
		}
		fmt.Printf("Checked %d rows from %d files: %d invalid\n", len(run.Validated), result.FilesProcessed, invalid)
		if invalid > 0 {
			return fmt.Errorf("%d invalid rows", invalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringArrayVarP(&checkInputs, "input", "i", nil, "Input file path (repeatable)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")

	_ = checkCmd.MarkFlagRequired("input")
}
