package analyzer

import "testing"

func TestCompileKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		opts    KeywordOptions
		line    string
		want    bool
	}{
		{
			name:    "literal match",
			keyword: "ERROR",
			line:    "2024-01-01 ERROR disk full",
			want:    true,
		},
		{
			name:    "literal escapes metacharacters",
			keyword: "a.b",
			line:    "axb",
			want:    false,
		},
		{
			name:    "regex alternation",
			keyword: "timeout|refused",
			opts:    KeywordOptions{Regex: true},
			line:    "connection refused",
			want:    true,
		},
		{
			name:    "ignore case",
			keyword: "error",
			opts:    KeywordOptions{IgnoreCase: true},
			line:    "ERROR something",
			want:    true,
		},
		{
			name:    "case sensitive by default",
			keyword: "error",
			line:    "ERROR something",
			want:    false,
		},
		{
			name:    "whole word rejects substring",
			keyword: "ERR",
			opts:    KeywordOptions{WholeWord: true},
			line:    "ERROR something",
			want:    false,
		},
		{
			name:    "whole word accepts token",
			keyword: "ERR",
			opts:    KeywordOptions{WholeWord: true},
			line:    "ERR something",
			want:    true,
		},
		{
			name:    "whole word wraps regex alternation",
			keyword: "cat|dog",
			opts:    KeywordOptions{Regex: true, WholeWord: true},
			line:    "hotdog stand",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompileKeyword(tt.keyword, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := re.MatchString(tt.line); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCompileKeywordInvalidRegex(t *testing.T) {
	if _, err := CompileKeyword("[unclosed", KeywordOptions{Regex: true}); err == nil {
		t.Error("want error for invalid regex, got nil")
	}
}

func TestCompileKeywordLiteralNeverFails(t *testing.T) {
	// Metacharacters in a literal keyword are quoted, not compiled
	if _, err := CompileKeyword("[unclosed", KeywordOptions{}); err != nil {
		t.Errorf("unexpected error for literal keyword: %v", err)
	}
}

func TestCountMatches(t *testing.T) {
	re, err := CompileKeyword("ERROR", KeywordOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := makeLines(
		"ERROR one",
		"INFO fine",
		"ERROR ERROR twice on one line",
		"no match",
	)

	// A line with several matches counts once
	if got := CountMatches(lines, re); got != 2 {
		t.Errorf("CountMatches() = %d, want 2", got)
	}
}

func TestCountMatchesEmptyInput(t *testing.T) {
	re, err := CompileKeyword("ERROR", KeywordOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountMatches(nil, re); got != 0 {
		t.Errorf("CountMatches() = %d, want 0", got)
	}
}
