package analyzer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "timestamp with hyphen date removed",
			input:    "2024-01-15 10:00:00 server started",
			expected: "server started",
		},
		{
			name:     "timestamp with T separator removed",
			input:    "2024-01-15T10:00:00 server started",
			expected: "server started",
		},
		{
			name:     "timestamp with fractional seconds removed",
			input:    "2024-01-15 10:00:00.123 server started",
			expected: "server started",
		},
		{
			name:     "slash date with time removed",
			input:    "2024/01/15 10:00:00 request served",
			expected: "request served",
		},
		{
			name:     "bare time removed",
			input:    "10:15:30 worker started",
			expected: "worker started",
		},
		{
			name:     "slash date without time removed",
			input:    "2024/01/15 backup finished",
			expected: "backup finished",
		},
		{
			name:     "hyphen date without time keeps number tokens",
			input:    "2024-01-15 backup finished",
			expected: "<NUM>-<NUM>-<NUM> backup finished",
		},
		{
			name:     "hex literal masked",
			input:    "panic at 0xDEADbeef",
			expected: "panic at <HEX>",
		},
		{
			name:     "uuid masked",
			input:    "request 123e4567-e89b-12d3-a456-426614174000 failed",
			expected: "request <UUID> failed",
		},
		{
			name:     "path masked before numbers",
			input:    "opened /var/log/app/2024/run.log after 42 retries",
			expected: "opened <PATH> after <NUM> retries",
		},
		{
			name:     "numbers masked",
			input:    "retry 3 of 10",
			expected: "retry <NUM> of <NUM>",
		},
		{
			name:     "only first physical line kept",
			input:    "ERROR worker died\nstack frame 1",
			expected: "ERROR worker died",
		},
		{
			name:     "whitespace collapsed",
			input:    "  spaced\tout   message ",
			expected: "spaced out message",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only input",
			input:    " \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNormalizeCollapsesVolatileFields(t *testing.T) {
	first := Normalize("2024-01-15 10:00:00 ERROR failed for user 42")
	second := Normalize("2024-01-16 11:30:00 ERROR failed for user 7")
	if first != second {
		t.Errorf("Expected identical keys, got %q and %q", first, second)
	}
	if first != "ERROR failed for user <NUM>" {
		t.Errorf("Expected %q, got %q", "ERROR failed for user <NUM>", first)
	}
}
