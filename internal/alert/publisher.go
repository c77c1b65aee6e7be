package alert

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

// SubjectHighRisk is the NATS subject for high-risk conversation alerts.
const SubjectHighRisk = "riskscan.conversation.high_risk"

// HighRiskEvent is emitted once per domain that classifies high, so a
// downstream triage consumer can route HIV and mental-health escalations
// independently.
type HighRiskEvent struct {
	EventID        string    `json:"event_id"`
	RunID          string    `json:"run_id"`
	ConversationID int       `json:"conversation_id"`
	Domain         string    `json:"domain"`
	Score          float64   `json:"score"`
	Level          string    `json:"level"`
	Recommendation string    `json:"recommendation"`
	Timestamp      time.Time `json:"timestamp"`
}

// HighRiskEvents builds the events for a result: zero, one, or two
// depending on which domains classified high.
func HighRiskEvents(runID uuid.UUID, r risk.Result) []HighRiskEvent {
	now := time.Now().UTC()

	var events []HighRiskEvent
	if r.HIVRiskLevel == risk.LevelHigh {
		events = append(events, HighRiskEvent{
			EventID:        uuid.NewString(),
			RunID:          runID.String(),
			ConversationID: r.ConversationID,
			Domain:         catalog.DomainHIV,
			Score:          r.HIVRiskScore,
			Level:          string(r.HIVRiskLevel),
			Recommendation: r.HIVRecommendation,
			Timestamp:      now,
		})
	}
	if r.MentalHealthRiskLevel == risk.LevelHigh {
		events = append(events, HighRiskEvent{
			EventID:        uuid.NewString(),
			RunID:          runID.String(),
			ConversationID: r.ConversationID,
			Domain:         catalog.DomainMentalHealth,
			Score:          r.MentalHealthRiskScore,
			Level:          string(r.MentalHealthRiskLevel),
			Recommendation: r.MentalHealthRecommendation,
			Timestamp:      now,
		})
	}
	return events
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// PublishHighRisk emits an alert for each high-classified domain of a
// result. Returns the number of events published.
func (p *Publisher) PublishHighRisk(runID uuid.UUID, r risk.Result) (int, error) {
	events := HighRiskEvents(runID, r)
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return 0, fmt.Errorf("marshal alert: %w", err)
		}
		if err := p.conn.Publish(SubjectHighRisk, payload); err != nil {
			return 0, fmt.Errorf("publish alert: %w", err)
		}
		p.logger.Info("high risk alert published",
			"conversation_id", ev.ConversationID,
			"domain", ev.Domain,
			"score", ev.Score,
		)
	}
	return len(events), nil
}

func (p *Publisher) Close() {
	p.conn.Close()
}
