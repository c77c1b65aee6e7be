package risk

import (
	"math"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/extract"
)

// Result is the per-conversation analysis record. It is created once by
// the Analyzer and never mutated; scores are rounded to two decimals for
// display while levels are classified from the unrounded values.
type Result struct {
	ConversationID             int     `json:"conversation_id"`
	HIVRiskScore               float64 `json:"hiv_risk_score"`
	HIVRiskLevel               Level   `json:"hiv_risk_level"`
	MentalHealthRiskScore      float64 `json:"mental_health_risk_score"`
	MentalHealthRiskLevel      Level   `json:"mental_health_risk_level"`
	HIVRecommendation          string  `json:"hiv_recommendation"`
	MentalHealthRecommendation string  `json:"mental_health_recommendation"`
}

// Analyzer scores conversations against a fixed pair of domain catalogs.
// It holds no per-conversation state and is safe for concurrent use.
type Analyzer struct {
	hiv          catalog.Catalog
	mentalHealth catalog.Catalog
}

// NewAnalyzer creates an analyzer over the given catalogs.
func NewAnalyzer(hiv, mentalHealth catalog.Catalog) *Analyzer {
	return &Analyzer{hiv: hiv, mentalHealth: mentalHealth}
}

// CatalogSizes returns the category counts per domain, for status
// reporting.
func (a *Analyzer) CatalogSizes() (hiv, mentalHealth int) {
	return len(a.hiv.Categories), len(a.mentalHealth.Categories)
}

// Analyze extracts the user text once and scores both domains
// independently on it. Pure function of its inputs given the catalogs.
func (a *Analyzer) Analyze(conversationID int, conversation string) Result {
	userText := extract.UserText(conversation)

	hivScore := Score(userText, a.hiv)
	mhScore := Score(userText, a.mentalHealth)

	hivLevel := LevelFor(hivScore)
	mhLevel := LevelFor(mhScore)

	return Result{
		ConversationID:             conversationID,
		HIVRiskScore:               round2(hivScore),
		HIVRiskLevel:               hivLevel,
		MentalHealthRiskScore:      round2(mhScore),
		MentalHealthRiskLevel:      mhLevel,
		HIVRecommendation:          Recommendation(catalog.DomainHIV, hivLevel),
		MentalHealthRecommendation: Recommendation(catalog.DomainMentalHealth, mhLevel),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
