package analyzer

// Report represents the result of one analysis run. Exactly one
// section is set, matching the mode that produced it.
type Report struct {
	Keyword  *KeywordReport  `json:"keyword,omitempty"`
	Severity *SeverityReport `json:"severity,omitempty"`
	Groups   *GroupReport    `json:"groups,omitempty"`
	Stats    *StatsReport    `json:"stats,omitempty"`
}

// KeywordReport represents a keyword occurrence count
type KeywordReport struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordOptions controls how the keyword pattern is compiled
type KeywordOptions struct {
	Regex      bool
	IgnoreCase bool
	WholeWord  bool
}

// GroupReport represents ranked groups of similar lines
type GroupReport struct {
	Groups []Group `json:"groups"`
}

// Group represents one cluster of lines sharing a normalized form
type Group struct {
	Count     int    `json:"count"`
	Sample    string `json:"sample"`
	FirstLine int    `json:"first_line"`
	LastLine  int    `json:"last_line"`
}

// GroupOptions controls grouping and ranking
type GroupOptions struct {
	TopN     int
	MinCount int
}

// SeverityReport counts lines per severity level. Levels keeps the
// scan order so output stays stable across runs.
type SeverityReport struct {
	Levels []string
	Counts map[string]int
}

// StatsReport represents line-level statistics for the input
type StatsReport struct {
	TotalLines    int `json:"total_lines"`
	EmptyLines    int `json:"empty_lines"`
	NonEmptyLines int `json:"non_empty_lines"`
	UniqueLines   int `json:"unique_lines"`
}
