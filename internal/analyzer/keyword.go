package analyzer

import (
	"fmt"
	"regexp"

	"github.com/yildizm/LogLens/internal/source"
)

// CompileKeyword builds the matcher used for keyword counting. Literal
// keywords are quoted before compilation. WholeWord wraps the pattern
// in word boundaries and IgnoreCase prepends the case-insensitive
// flag, so both compose with either keyword form.
func CompileKeyword(keyword string, opts KeywordOptions) (*regexp.Regexp, error) {
	pattern := keyword
	if !opts.Regex {
		pattern = regexp.QuoteMeta(keyword)
	}
	if opts.WholeWord {
		if opts.Regex {
			pattern = `\b(?:` + pattern + `)\b`
		} else {
			pattern = `\b` + pattern + `\b`
		}
	}
	if opts.IgnoreCase {
		pattern = `(?i)` + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}
	return re, nil
}

// CountMatches counts lines containing at least one match. A line with
// several matches still counts once.
func CountMatches(lines []source.Line, re *regexp.Regexp) int {
	count := 0
	for _, line := range lines {
		if re.MatchString(line.Text) {
			count++
		}
	}
	return count
}
