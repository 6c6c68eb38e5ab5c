package formatter

import (
	"fmt"

	"github.com/yildizm/LogLens/internal/analyzer"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *analyzer.Report) ([]byte, error)
}

// New returns the formatter for the given output format name
func New(format string) (Formatter, error) {
	switch format {
	case "text", "":
		return NewText(), nil
	case "table":
		return NewTable(), nil
	case "json":
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (use text, table, or json)", format)
	}
}
