package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"punchclock/importer"
	"punchclock/output"
	"punchclock/timecard"
)

var (
	exportInputs []string
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-day summaries to CSV/Excel",
	Long: `Run the pipeline and write the resulting summaries to a file.

The batch comes from --input files or, when omitted, from the stored batch.
Output format can be selected explicitly via --format or inferred from the
--output extension. Like sum, export requires a fully valid batch.`,
	Example: `
  # Export summaries of the stored batch to CSV
  punchclock export --output ./summaries.csv

  # Export summaries of entry files to Excel
  punchclock export -i week34.csv --output ./summaries.xlsx

  # Force Excel format independent of extension
  punchclock export --format excel --output ./summaries.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		pipe, cfg, err := pipelineFromConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cfg, exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var entries []timecard.RawEntry
		if len(exportInputs) > 0 {
			result, readErr := importer.ReadEntries(exportInputs, "")
			if readErr != nil {
				return readErr
			}
			entries = result.Entries
		} else {
			entries, err = store.LoadBatch(batchName(cfg))
			if err != nil {
				return err
			}
		}

		run, err := pipe.Run(entries)
		if err != nil {
			return err
		}
		if !run.Aggregated {
			return fmt.Errorf("nothing to export: the batch must be fully valid and hold at least 2 entries")
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, run.Summaries); err != nil {
			return err
		}

		fmt.Printf("Export completed. Summaries: %d, Format: %s, File: %s\n", len(run.Summaries), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringArrayVarP(&exportInputs, "input", "i", nil, "Input file path (repeatable; omit to use the stored batch)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite store (overrides config)")

	_ = exportCmd.MarkFlagRequired("output")
}
