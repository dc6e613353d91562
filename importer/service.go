// Package importer reads raw entry batches from user-maintained CSV and
// Excel files. Rows come out as free text; the pipeline decides what is
// valid, exactly as it would for rows typed into the entry form.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"punchclock/timecard"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	Entries        []timecard.RawEntry
}

// ReadEntries reads every input file into one ordered raw batch. When format
// is empty it is inferred per file from the extension.
func ReadEntries(paths []string, format string) (*Result, error) {
	result := &Result{Entries: make([]timecard.RawEntry, 0, 64)}
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(records)
		for _, record := range records {
			result.Entries = append(result.Entries, mapRecord(record))
		}
	}

	return result, nil
}

func mapRecord(record Record) timecard.RawEntry {
	return timecard.RawEntry{
		Date:    record.Get("date", "day"),
		Project: record.Get("project"),
		Task:    record.Get("task", "activity"),
		Start:   record.Get("start", "time", "starttime"),
	}
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
