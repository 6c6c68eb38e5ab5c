package analyzer

import (
	"regexp"
	"strings"
)

// Replacements run in a fixed order. Paths are masked before bare
// numbers so digits inside a path do not split a group.
var (
	timestampPattern = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{4}/\d{2}/\d{2})[ T]\d{2}:\d{2}:\d{2}(?:\.\d+)?\b|\b\d{2}:\d{2}:\d{2}(?:\.\d+)?\b`)
	slashDatePattern = regexp.MustCompile(`\b\d{4}/\d{2}/\d{2}\b`)
	hexPattern       = regexp.MustCompile(`\b0x[0-9a-fA-F]+\b`)
	uuidPattern      = regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`)
	pathPattern      = regexp.MustCompile(`(?:/\S+)+`)
	numberPattern    = regexp.MustCompile(`\b\d+\b`)
)

// Normalize reduces a raw log line to its grouping key. The line is
// cut at the first newline, timestamps are stripped, and hex literals,
// UUIDs, filesystem paths and numbers become placeholder tokens.
// Whitespace runs collapse to single spaces, so lines differing only
// in volatile fields map to the same key.
func Normalize(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")

	line = timestampPattern.ReplaceAllString(line, "")
	line = slashDatePattern.ReplaceAllString(line, "")
	line = hexPattern.ReplaceAllString(line, "<HEX>")
	line = uuidPattern.ReplaceAllString(line, "<UUID>")
	line = pathPattern.ReplaceAllString(line, "<PATH>")
	line = numberPattern.ReplaceAllString(line, "<NUM>")

	return strings.Join(strings.Fields(line), " ")
}
