package risk

import (
	"strings"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
)

// Score applies a domain catalog to a text blob and returns the
// aggregate risk score in [0,1].
//
// Each category contributes its full weight at most once, no matter how
// many of its patterns match or how often. The sum is capped at 1.0
// rather than normalized, so weights are additive evidence and a domain
// whose weights sum past 1.0 saturates.
func Score(text string, cat catalog.Catalog) float64 {
	lower := strings.ToLower(text)

	score := 0.0
	for _, c := range cat.Categories {
		if c.Triggered(lower) {
			score += c.Weight
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
