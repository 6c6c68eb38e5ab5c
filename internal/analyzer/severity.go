package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yildizm/LogLens/internal/source"
)

// DefaultLevels is the severity scale scanned by the summary mode.
var DefaultLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// DefaultExitCodes maps severity levels to the process exit code
// reported when at least one line of that level is present.
var DefaultExitCodes = map[string]int{
	"ERROR":    1,
	"CRITICAL": 1,
}

// ParseLevels splits a comma-separated level list, trimming whitespace
// and dropping empty entries. A duplicate level keeps its first
// position.
func ParseLevels(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	levels := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		level := strings.TrimSpace(part)
		if level == "" || seen[level] {
			continue
		}
		seen[level] = true
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels cannot be empty")
	}
	return levels, nil
}

// ParseExitCodes parses a comma-separated LEVEL=CODE list, for example
// "ERROR=2,CRITICAL=3".
func ParseExitCodes(value string) (map[string]int, error) {
	codes := make(map[string]int)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		level, raw, found := strings.Cut(part, "=")
		level = strings.TrimSpace(level)
		code, err := strconv.Atoi(strings.TrimSpace(raw))
		if !found || level == "" || err != nil {
			return nil, fmt.Errorf("invalid exit code entry %q (want LEVEL=CODE)", part)
		}
		codes[level] = code
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("exit codes cannot be empty")
	}
	return codes, nil
}

// Summarize counts lines per severity level. Each line counts toward
// the first level it matches, in scan order, so overlapping levels
// never double-count a line. Levels absent from the input report zero.
func Summarize(lines []source.Line, levels []string) *SeverityReport {
	counts := make(map[string]int, len(levels))
	patterns := make([]*regexp.Regexp, len(levels))
	for i, level := range levels {
		counts[level] = 0
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(level) + `\b`)
	}

	for _, line := range lines {
		for i, level := range levels {
			if patterns[i].MatchString(line.Text) {
				counts[level]++
				break
			}
		}
	}

	return &SeverityReport{Levels: levels, Counts: counts}
}

// ExitCode returns the highest configured exit code among levels with
// a nonzero count, or zero when none apply.
func (r *SeverityReport) ExitCode(codes map[string]int) int {
	exit := 0
	for _, level := range r.Levels {
		if r.Counts[level] == 0 {
			continue
		}
		if code, ok := codes[level]; ok && code > exit {
			exit = code
		}
	}
	return exit
}

// MarshalJSON emits the counts as an object ordered by the level scan
// order rather than by map iteration.
func (r *SeverityReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, level := range r.Levels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(level)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(r.Counts[level]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
