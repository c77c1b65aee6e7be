package alert

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

func TestHighRiskEvents_NoneForLowModerate(t *testing.T) {
	runID := uuid.New()
	r := risk.Result{
		ConversationID:        5,
		HIVRiskScore:          0.45,
		HIVRiskLevel:          risk.LevelModerate,
		MentalHealthRiskScore: 0.0,
		MentalHealthRiskLevel: risk.LevelLow,
	}

	events := HighRiskEvents(runID, r)
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestHighRiskEvents_SingleDomain(t *testing.T) {
	runID := uuid.New()
	r := risk.Result{
		ConversationID:             5,
		HIVRiskScore:               0.7,
		HIVRiskLevel:               risk.LevelHigh,
		HIVRecommendation:          "hiv high message",
		MentalHealthRiskScore:      0.2,
		MentalHealthRiskLevel:      risk.LevelLow,
		MentalHealthRecommendation: "mh low message",
	}

	events := HighRiskEvents(runID, r)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.Domain != catalog.DomainHIV {
		t.Errorf("domain = %q, want hiv", ev.Domain)
	}
	if ev.ConversationID != 5 {
		t.Errorf("conversation id = %d, want 5", ev.ConversationID)
	}
	if ev.Score != 0.7 || ev.Level != "high" {
		t.Errorf("score/level = %f/%q", ev.Score, ev.Level)
	}
	if ev.Recommendation != "hiv high message" {
		t.Errorf("recommendation = %q", ev.Recommendation)
	}
	if ev.RunID != runID.String() {
		t.Errorf("run id = %q, want %q", ev.RunID, runID.String())
	}
	if ev.EventID == "" {
		t.Error("event id should be set")
	}
}

func TestHighRiskEvents_BothDomains(t *testing.T) {
	runID := uuid.New()
	r := risk.Result{
		ConversationID:        9,
		HIVRiskScore:          0.85,
		HIVRiskLevel:          risk.LevelHigh,
		MentalHealthRiskScore: 0.6,
		MentalHealthRiskLevel: risk.LevelHigh,
	}

	events := HighRiskEvents(runID, r)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Domain != catalog.DomainHIV || events[1].Domain != catalog.DomainMentalHealth {
		t.Errorf("domains = %q, %q", events[0].Domain, events[1].Domain)
	}
	if events[0].EventID == events[1].EventID {
		t.Error("events should have distinct ids")
	}
}
