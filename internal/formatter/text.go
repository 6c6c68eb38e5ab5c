package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/LogLens/internal/analyzer"
)

// textFormatter renders reports as plain text, one result per line
type textFormatter struct{}

// NewText creates a new plain text formatter
func NewText() Formatter {
	return &textFormatter{}
}

func (f *textFormatter) Format(report *analyzer.Report) ([]byte, error) {
	var b strings.Builder

	switch {
	case report.Keyword != nil:
		fmt.Fprintf(&b, "Total '%s' occurrences: %d\n", report.Keyword.Keyword, report.Keyword.Count)

	case report.Severity != nil:
		for _, level := range report.Severity.Levels {
			fmt.Fprintf(&b, "%s: %d\n", level, report.Severity.Counts[level])
		}

	case report.Groups != nil:
		for _, group := range report.Groups.Groups {
			fmt.Fprintf(&b, "%dx | lines %d-%d | %s\n", group.Count, group.FirstLine, group.LastLine, group.Sample)
		}

	case report.Stats != nil:
		stats := report.Stats
		fmt.Fprintf(&b, "total_lines: %d\n", stats.TotalLines)
		fmt.Fprintf(&b, "empty_lines: %d\n", stats.EmptyLines)
		fmt.Fprintf(&b, "non_empty_lines: %d\n", stats.NonEmptyLines)
		fmt.Fprintf(&b, "unique_lines: %d\n", stats.UniqueLines)

	default:
		return nil, fmt.Errorf("empty report")
	}

	return []byte(b.String()), nil
}
