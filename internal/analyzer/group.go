package analyzer

import (
	"sort"

	"github.com/yildizm/LogLens/internal/source"
)

// groupState accumulates one normalized key during the scan
type groupState struct {
	count     int
	sample    string
	firstLine int
	lastLine  int
}

// GroupLines clusters lines by normalized form and returns the top
// groups ranked by count, highest first. The first line seen for a key
// supplies the sample text and first-line number; equal counts keep
// first-seen order. Lines that normalize to an empty key are skipped.
// A TopN of zero or less yields an empty result.
func GroupLines(lines []source.Line, opts GroupOptions) []Group {
	states := make(map[string]*groupState)
	order := make([]string, 0)

	for _, line := range lines {
		key := Normalize(line.Text)
		if key == "" {
			continue
		}
		state, ok := states[key]
		if !ok {
			state = &groupState{
				sample:    line.Text,
				firstLine: line.Number,
			}
			states[key] = state
			order = append(order, key)
		}
		state.count++
		state.lastLine = line.Number
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		state := states[key]
		if state.count < opts.MinCount {
			continue
		}
		groups = append(groups, Group{
			Count:     state.count,
			Sample:    state.sample,
			FirstLine: state.firstLine,
			LastLine:  state.lastLine,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	if opts.TopN <= 0 {
		return []Group{}
	}
	if len(groups) > opts.TopN {
		groups = groups[:opts.TopN]
	}
	return groups
}
