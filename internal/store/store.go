package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// CreateRun records a new analysis run and returns its ID. Source labels
// where the run came from ("batch", "api").
func (s *Store) CreateRun(ctx context.Context, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analysis_runs (id, source)
		VALUES ($1, $2)`,
		id, source,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert analysis run: %w", err)
	}
	return id, nil
}

// InsertResult persists one conversation's analysis under a run.
func (s *Store) InsertResult(ctx context.Context, runID uuid.UUID, r risk.Result) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analysis_results (
			run_id, conversation_id,
			hiv_risk_score, hiv_risk_level,
			mental_health_risk_score, mental_health_risk_level,
			hiv_recommendation, mental_health_recommendation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		runID, r.ConversationID,
		r.HIVRiskScore, string(r.HIVRiskLevel),
		r.MentalHealthRiskScore, string(r.MentalHealthRiskLevel),
		r.HIVRecommendation, r.MentalHealthRecommendation,
	)
	if err != nil {
		return fmt.Errorf("insert analysis result: %w", err)
	}
	return nil
}

// ListResults fetches a run's results ordered by conversation ID.
func (s *Store) ListResults(ctx context.Context, runID uuid.UUID, limit int) ([]risk.Result, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx, `
		SELECT conversation_id,
			hiv_risk_score, hiv_risk_level,
			mental_health_risk_score, mental_health_risk_level,
			hiv_recommendation, mental_health_recommendation
		FROM analysis_results
		WHERE run_id = $1
		ORDER BY conversation_id
		LIMIT $2`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []risk.Result
	for rows.Next() {
		var r risk.Result
		var hivLevel, mhLevel string
		err := rows.Scan(&r.ConversationID,
			&r.HIVRiskScore, &hivLevel,
			&r.MentalHealthRiskScore, &mhLevel,
			&r.HIVRecommendation, &r.MentalHealthRecommendation)
		if err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		r.HIVRiskLevel = risk.Level(hivLevel)
		r.MentalHealthRiskLevel = risk.Level(mhLevel)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}
	return results, nil
}

// HighRiskCount returns how many conversations in a run classified high
// in either domain.
func (s *Store) HighRiskCount(ctx context.Context, runID uuid.UUID) (int, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM analysis_results
		WHERE run_id = $1
		AND (hiv_risk_level = 'high' OR mental_health_risk_level = 'high')`, runID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count high risk: %w", err)
	}
	return n, nil
}
