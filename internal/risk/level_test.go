package risk

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Level
	}{
		{"zero", 0.0, LevelLow},
		{"just under moderate", 0.29, LevelLow},
		{"moderate boundary inclusive", 0.30, LevelModerate},
		{"mid moderate", 0.45, LevelModerate},
		{"just under high", 0.59, LevelModerate},
		{"high boundary inclusive", 0.60, LevelHigh},
		{"maximum", 1.0, LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFor(tt.score); got != tt.want {
				t.Errorf("LevelFor(%f) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}
