package formatter

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/yildizm/LogLens/internal/analyzer"
)

// tableFormatter renders reports as aligned tables
type tableFormatter struct{}

// NewTable creates a new table formatter
func NewTable() Formatter {
	return &tableFormatter{}
}

func (f *tableFormatter) Format(report *analyzer.Report) ([]byte, error) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = true
	tbl.Style().Options.DrawBorder = false

	switch {
	case report.Keyword != nil:
		tbl.AppendHeader(table.Row{"Keyword", "Count"})
		tbl.AppendRow(table.Row{report.Keyword.Keyword, report.Keyword.Count})

	case report.Severity != nil:
		tbl.AppendHeader(table.Row{"Level", "Count"})
		for _, level := range report.Severity.Levels {
			tbl.AppendRow(table.Row{level, report.Severity.Counts[level]})
		}

	case report.Groups != nil:
		tbl.AppendHeader(table.Row{"Count", "First Line", "Last Line", "Sample"})
		for _, group := range report.Groups.Groups {
			tbl.AppendRow(table.Row{group.Count, group.FirstLine, group.LastLine, group.Sample})
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d groups", len(report.Groups.Groups))})

	case report.Stats != nil:
		stats := report.Stats
		tbl.AppendHeader(table.Row{"Metric", "Value"})
		tbl.AppendRow(table.Row{"total_lines", stats.TotalLines})
		tbl.AppendRow(table.Row{"empty_lines", stats.EmptyLines})
		tbl.AppendRow(table.Row{"non_empty_lines", stats.NonEmptyLines})
		tbl.AppendRow(table.Row{"unique_lines", stats.UniqueLines})

	default:
		return nil, fmt.Errorf("empty report")
	}

	return []byte(tbl.Render() + "\n"), nil
}
