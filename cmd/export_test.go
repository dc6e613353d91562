package cmd

import "testing"

func TestDetectExportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"summary.csv", "csv"},
		{"Summary.CSV", "csv"},
		{"report.xlsx", "excel"},
		{"report.xlsm", "excel"},
		{"legacy.xls", "excel"},
		{"out/2026-08.xlsx", "excel"},
		{"noextension", "csv"},
		{"weird.txt", "csv"},
	}

	for _, tc := range tests {
		if got := detectExportFormat(tc.path); got != tc.want {
			t.Errorf("detectExportFormat(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
