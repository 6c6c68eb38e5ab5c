package analyzer

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	lines := makeLines(
		"2024-01-01 ERROR disk full",
		"2024-01-01 WARNING low space",
		"2024-01-01 INFO started",
		"2024-01-01 ERROR again",
		"plain line",
	)

	report := Summarize(lines, DefaultLevels)

	want := map[string]int{
		"DEBUG":    0,
		"INFO":     1,
		"WARNING":  1,
		"ERROR":    2,
		"CRITICAL": 0,
	}
	if !reflect.DeepEqual(report.Counts, want) {
		t.Errorf("Counts = %v, want %v", report.Counts, want)
	}
}

func TestSummarizeFirstLevelWins(t *testing.T) {
	// A line naming two levels counts toward the first in scan order
	lines := makeLines("INFO escalated to ERROR")

	report := Summarize(lines, DefaultLevels)

	if report.Counts["INFO"] != 1 {
		t.Errorf("Counts[INFO] = %d, want 1", report.Counts["INFO"])
	}
	if report.Counts["ERROR"] != 0 {
		t.Errorf("Counts[ERROR] = %d, want 0", report.Counts["ERROR"])
	}
}

func TestSummarizeWholeWordOnly(t *testing.T) {
	lines := makeLines("INFOS and ERRORS are not level tokens")

	report := Summarize(lines, DefaultLevels)

	for level, count := range report.Counts {
		if count != 0 {
			t.Errorf("Counts[%s] = %d, want 0", level, count)
		}
	}
}

func TestSummarizeCustomLevels(t *testing.T) {
	lines := makeLines("WARN low", "FATAL crash", "WARN again")

	report := Summarize(lines, []string{"WARN", "FATAL"})

	if report.Counts["WARN"] != 2 {
		t.Errorf("Counts[WARN] = %d, want 2", report.Counts["WARN"])
	}
	if report.Counts["FATAL"] != 1 {
		t.Errorf("Counts[FATAL] = %d, want 1", report.Counts["FATAL"])
	}
}

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "basic list",
			input: "WARN,ERROR,FATAL",
			want:  []string{"WARN", "ERROR", "FATAL"},
		},
		{
			name:  "trims whitespace and drops empties",
			input: " WARN , ,ERROR, ",
			want:  []string{"WARN", "ERROR"},
		},
		{
			name:  "duplicate keeps first position",
			input: "ERROR,WARN,ERROR",
			want:  []string{"ERROR", "WARN"},
		},
		{
			name:    "empty list",
			input:   " , ,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevels(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLevels(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseExitCodes(t *testing.T) {
	codes, err := ParseExitCodes("ERROR=2,CRITICAL=3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codes["ERROR"] != 2 {
		t.Errorf("codes[ERROR] = %d, want 2", codes["ERROR"])
	}
	if codes["CRITICAL"] != 3 {
		t.Errorf("codes[CRITICAL] = %d, want 3", codes["CRITICAL"])
	}
}

func TestParseExitCodesInvalid(t *testing.T) {
	inputs := []string{"ERROR", "ERROR=x", "=2", "", " , "}
	for _, input := range inputs {
		if _, err := ParseExitCodes(input); err == nil {
			t.Errorf("ParseExitCodes(%q): want error, got nil", input)
		}
	}
}

func TestSeverityExitCode(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		codes map[string]int
		want  int
	}{
		{
			name:  "clean log exits zero",
			texts: []string{"INFO all good"},
			codes: DefaultExitCodes,
			want:  0,
		},
		{
			name:  "error maps to one by default",
			texts: []string{"ERROR bad"},
			codes: DefaultExitCodes,
			want:  1,
		},
		{
			name:  "highest mapped code wins",
			texts: []string{"ERROR bad", "CRITICAL worse"},
			codes: map[string]int{"ERROR": 2, "CRITICAL": 3},
			want:  3,
		},
		{
			name:  "unmapped level is ignored",
			texts: []string{"WARNING meh"},
			codes: DefaultExitCodes,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Summarize(makeLines(tt.texts...), DefaultLevels)
			if got := report.ExitCode(tt.codes); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityReportMarshalJSONKeepsLevelOrder(t *testing.T) {
	report := Summarize(makeLines("ERROR x"), DefaultLevels)

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"DEBUG":0,"INFO":0,"WARNING":0,"ERROR":1,"CRITICAL":0}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}
