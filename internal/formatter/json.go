package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/yildizm/LogLens/internal/analyzer"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// Format emits the mode-specific JSON shape. Group results serialize
// as a bare array of {count, sample, first_line, last_line} objects;
// that shape is a compatibility surface and must not change.
func (f *jsonFormatter) Format(report *analyzer.Report) ([]byte, error) {
	var value interface{}

	switch {
	case report.Keyword != nil:
		value = report.Keyword
	case report.Severity != nil:
		value = report.Severity
	case report.Groups != nil:
		value = report.Groups.Groups
	case report.Stats != nil:
		value = report.Stats
	default:
		return nil, fmt.Errorf("empty report")
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return append(data, '\n'), nil
}
