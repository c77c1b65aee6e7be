package risk

// Level is the ordinal risk bucket derived from a score.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Thresholds shared by both domains. Bands are inclusive on their lower
// bound: [0, 0.30) low, [0.30, 0.60) moderate, [0.60, 1.0] high.
const (
	moderateThreshold = 0.3
	highThreshold     = 0.6
)

// LevelFor maps a risk score to its level. It is always called with the
// unrounded score; display rounding happens only in the result record.
func LevelFor(score float64) Level {
	switch {
	case score < moderateThreshold:
		return LevelLow
	case score < highThreshold:
		return LevelModerate
	default:
		return LevelHigh
	}
}
