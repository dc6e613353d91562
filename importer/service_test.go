package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadEntries_CSVWithAliasedHeaders(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "entries.csv", "Date,Project,Task,Start Time\n2014-08-18,P0,T0,09:00\n2014-08-18,Home,,17:00\n")

	result, err := ReadEntries([]string{path}, "")
	if err != nil {
		t.Fatalf("read entries: %v", err)
	}
	if result.FilesProcessed != 1 || result.RowsRead != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}

	first := result.Entries[0]
	if first.Date != "2014-08-18" || first.Project != "P0" || first.Task != "T0" || first.Start != "09:00" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if result.Entries[1].Project != "Home" || result.Entries[1].Task != "" {
		t.Fatalf("unexpected second entry: %+v", result.Entries[1])
	}
}

func TestReadEntries_KeepsInvalidValuesVerbatim(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rough.csv", "date,project,task,start\nnot-a-date,P0,T0,whenever\n")

	result, err := ReadEntries([]string{path}, "csv")
	if err != nil {
		t.Fatalf("read entries: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].Date != "not-a-date" || result.Entries[0].Start != "whenever" {
		t.Fatalf("reader must not judge field content, got %+v", result.Entries[0])
	}
}

func TestReadEntries_MissingColumnsYieldEmptyFields(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "partial.csv", "project,start\nP0,09:00\n")

	result, err := ReadEntries([]string{path}, "")
	if err != nil {
		t.Fatalf("read entries: %v", err)
	}
	entry := result.Entries[0]
	if entry.Date != "" || entry.Task != "" {
		t.Fatalf("missing columns must map to empty fields, got %+v", entry)
	}
	if entry.Project != "P0" || entry.Start != "09:00" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "explicit override", path: "entries.unknown", format: "csv", want: "csv"},
		{name: "csv extension", path: "entries.csv", want: "csv"},
		{name: "xlsx extension", path: "Entries.XLSX", want: "excel"},
		{name: "unknown extension", path: "entries.txt", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := inferFormat(tc.path, tc.format)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected format: want %s, got %s", tc.want, got)
			}
		})
	}
}
