package formatter

import (
	"strings"
	"testing"

	"github.com/yildizm/LogLens/internal/analyzer"
)

func TestTextFormat(t *testing.T) {
	tests := []struct {
		name   string
		report *analyzer.Report
		want   string
	}{
		{
			name:   "keyword",
			report: sampleReports()["count"],
			want:   "Total 'ERROR' occurrences: 3\n",
		},
		{
			name:   "summary keeps level order",
			report: sampleReports()["summary"],
			want:   "INFO: 1\nERROR: 2\n",
		},
		{
			name:   "group",
			report: sampleReports()["group"],
			want:   "2x | lines 1-5 | ERROR disk full\n1x | lines 3-3 | WARNING low space\n",
		},
		{
			name:   "stats",
			report: sampleReports()["stats"],
			want:   "total_lines: 4\nempty_lines: 1\nnon_empty_lines: 3\nunique_lines: 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewText().Format(tt.report)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(output) != tt.want {
				t.Errorf("Format() = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestTextFormatEmptyGroupList(t *testing.T) {
	report := &analyzer.Report{Groups: &analyzer.GroupReport{Groups: nil}}

	output, err := NewText().Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output) != 0 {
		t.Errorf("want empty output, got %q", output)
	}
}

func TestTextFormatEmptyReport(t *testing.T) {
	if _, err := NewText().Format(&analyzer.Report{}); err == nil {
		t.Error("want error for empty report, got nil")
	}
}

func TestTableFormat(t *testing.T) {
	output, err := NewTable().Format(sampleReports()["group"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("want header, rows, and footer, got %d lines", len(lines))
	}

	header := lines[0]
	for _, col := range []string{"COUNT", "FIRST LINE", "LAST LINE", "SAMPLE"} {
		if !strings.Contains(strings.ToUpper(header), col) {
			t.Errorf("header %q missing column %q", header, col)
		}
	}
	if !strings.Contains(string(output), "ERROR disk full") {
		t.Errorf("output missing sample row: %s", output)
	}
}

func TestTableFormatStats(t *testing.T) {
	output, err := NewTable().Format(sampleReports()["stats"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, metric := range []string{"total_lines", "empty_lines", "non_empty_lines", "unique_lines"} {
		if !strings.Contains(string(output), metric) {
			t.Errorf("output missing metric %q: %s", metric, output)
		}
	}
}

func TestNewFormatterSelection(t *testing.T) {
	for _, format := range []string{"text", "table", "json", ""} {
		if _, err := New(format); err != nil {
			t.Errorf("New(%q): unexpected error: %v", format, err)
		}
	}
	if _, err := New("xml"); err == nil {
		t.Error("New(xml): want error, got nil")
	}
}
