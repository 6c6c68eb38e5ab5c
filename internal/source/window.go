package source

import (
	"fmt"
	"regexp"
	"time"
)

// Window is an inclusive timestamp range applied to the line stream
// before analysis. A nil bound is open on that side. Lines without an
// extractable timestamp are dropped while the window is active unless
// IncludeUntimestamped is set.
type Window struct {
	Since                *time.Time
	Until                *time.Time
	IncludeUntimestamped bool
}

// Common timestamp shapes found in plain-text logs, tried in order.
var timestampPatterns = []struct {
	regex  *regexp.Regexp
	layout string
}{
	{
		regex:  regexp.MustCompile(`\b\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?\b`),
		layout: "2006-01-02 15:04:05",
	},
	{
		regex:  regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?\b`),
		layout: "2006-01-02T15:04:05",
	},
	{
		regex:  regexp.MustCompile(`\b\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?\b`),
		layout: "2006/01/02 15:04:05",
	},
	{
		regex:  regexp.MustCompile(`\b\d{4}/\d{2}/\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?\b`),
		layout: "2006/01/02T15:04:05",
	},
}

// Layouts accepted for user-supplied --since/--until values.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ExtractTimestamp returns the first timestamp found in text.
func ExtractTimestamp(text string) (time.Time, bool) {
	for _, pattern := range timestampPatterns {
		match := pattern.regex.FindString(text)
		if match == "" {
			continue
		}
		if t, err := time.Parse(pattern.layout, match); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTime parses a user-supplied time bound.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC 3339 or \"2006-01-02 15:04:05\")", value)
}

// Active reports whether the window constrains the stream at all.
func (w Window) Active() bool {
	return w.Since != nil || w.Until != nil
}

// Filter returns the lines falling inside the window. Line numbers are
// preserved from the original stream. An inactive window passes the
// input through unchanged.
func (w Window) Filter(lines []Line) []Line {
	if !w.Active() {
		return lines
	}

	filtered := make([]Line, 0, len(lines))
	for _, line := range lines {
		ts, ok := ExtractTimestamp(line.Text)
		if !ok {
			if w.IncludeUntimestamped {
				filtered = append(filtered, line)
			}
			continue
		}
		if w.Since != nil && ts.Before(*w.Since) {
			continue
		}
		if w.Until != nil && ts.After(*w.Until) {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}
