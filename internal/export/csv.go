package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

// header is the fixed column layout consumed downstream; order matters.
var header = []string{
	"conversation_id",
	"hiv_risk_score",
	"hiv_risk_level",
	"mental_health_risk_score",
	"mental_health_risk_level",
	"hiv_recommendation",
	"mental_health_recommendation",
}

// WriteCSV writes analysis results to path as CSV, one row per
// conversation, scores formatted with two decimals.
func WriteCSV(path string, results []risk.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.ConversationID),
			strconv.FormatFloat(r.HIVRiskScore, 'f', 2, 64),
			string(r.HIVRiskLevel),
			strconv.FormatFloat(r.MentalHealthRiskScore, 'f', 2, 64),
			string(r.MentalHealthRiskLevel),
			r.HIVRecommendation,
			r.MentalHealthRecommendation,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", r.ConversationID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
