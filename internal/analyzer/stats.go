package analyzer

import (
	"strings"

	"github.com/yildizm/LogLens/internal/source"
)

// ComputeStats summarizes line counts for the input. A line is empty
// when it contains only whitespace; uniqueness compares raw line text,
// empty lines included.
func ComputeStats(lines []source.Line) *StatsReport {
	stats := &StatsReport{TotalLines: len(lines)}
	unique := make(map[string]bool, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			stats.EmptyLines++
		} else {
			stats.NonEmptyLines++
		}
		unique[line.Text] = true
	}
	stats.UniqueLines = len(unique)
	return stats
}
