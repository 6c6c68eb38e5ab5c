package analyzer

import "testing"

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  StatsReport
	}{
		{
			name:  "mixed input",
			texts: []string{"a", "", "b", "b"},
			want:  StatsReport{TotalLines: 4, EmptyLines: 1, NonEmptyLines: 3, UniqueLines: 3},
		},
		{
			name:  "whitespace only counts as empty",
			texts: []string{"  \t ", "x"},
			want:  StatsReport{TotalLines: 2, EmptyLines: 1, NonEmptyLines: 1, UniqueLines: 2},
		},
		{
			name: "empty input",
			want: StatsReport{},
		},
		{
			name:  "uniqueness compares raw text",
			texts: []string{"a ", "a"},
			want:  StatsReport{TotalLines: 2, EmptyLines: 0, NonEmptyLines: 2, UniqueLines: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(makeLines(tt.texts...))
			if *got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
