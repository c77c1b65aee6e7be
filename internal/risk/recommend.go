package risk

import "github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"

// Advisory messages, keyed by domain then level. Selection is purely by
// level — the score value is never interpolated into the message.
var recommendations = map[string]map[Level]string{
	catalog.DomainHIV: {
		LevelLow: "HIV risk low. Recommend routine HIV testing, consistent condom use, " +
			"and STI prevention.",
		LevelModerate: "Moderate HIV risk. Recommend prompt HIV testing, STI screening, and " +
			"assessment for PEP if exposure was within 72 hours.",
		LevelHigh: "High HIV risk. Immediate clinical assessment advised. Evaluate for PEP, " +
			"STI screening, pregnancy screening if applicable, and urgent HIV testing.",
	},
	catalog.DomainMentalHealth: {
		LevelLow: "Low mental health risk. Provide psychoeducation, stress management, " +
			"and routine monitoring.",
		LevelModerate: "Moderate mental health risk. Recommend clinic-based mental health " +
			"assessment and counselling support.",
		LevelHigh: "High mental health risk. Urgent same-day mental health assessment advised, " +
			"including screening for suicidality or self-harm.",
	},
}

// Recommendation returns the fixed advisory message for a domain and
// level. Unknown domains yield "" — callers only pass the two catalog
// domain constants.
func Recommendation(domain string, level Level) string {
	return recommendations[domain][level]
}
