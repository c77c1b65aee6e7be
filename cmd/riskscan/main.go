package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/alert"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/config"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/export"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/ingest"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/store"
)

func main() {
	input := flag.String("input", "", "path to the conversations TXT file (required)")
	output := flag.String("output", "conversation_risk_results.csv", "path for the CSV export")
	persist := flag.Bool("store", false, "persist results to Postgres (requires DATABASE_URL)")
	publish := flag.Bool("publish", false, "publish high-risk alerts to NATS")
	flag.Parse()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if *input == "" {
		slog.Error("-input is required")
		os.Exit(1)
	}

	ctx := context.Background()

	hiv, mentalHealth, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		slog.Error("invalid catalog configuration", "error", err)
		os.Exit(1)
	}
	analyzer := risk.NewAnalyzer(hiv, mentalHealth)

	conversations, err := ingest.LoadConversations(*input)
	if err != nil {
		slog.Error("failed to load conversations", "path", *input, "error", err)
		os.Exit(1)
	}
	slog.Info("conversations loaded", "path", *input, "count", len(conversations))

	// Optional collaborators.
	var db *store.Store
	if *persist {
		if cfg.DatabaseURL == "" {
			slog.Error("DATABASE_URL is required with -store")
			os.Exit(1)
		}
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	}

	var alerts *alert.Publisher
	if *publish {
		if cfg.NatsURL == "" {
			slog.Error("NATS_URL is required with -publish")
			os.Exit(1)
		}
		alerts, err = alert.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer alerts.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	runID := uuid.New()
	if db != nil {
		runID, err = db.CreateRun(ctx, "batch")
		if err != nil {
			slog.Error("failed to create run", "error", err)
			os.Exit(1)
		}
	}

	results := make([]risk.Result, 0, len(conversations))
	highRisk := 0
	for idx, conv := range conversations {
		result := analyzer.Analyze(idx, conv)
		results = append(results, result)

		if result.HIVRiskLevel == risk.LevelHigh || result.MentalHealthRiskLevel == risk.LevelHigh {
			highRisk++
		}

		if db != nil {
			if err := db.InsertResult(ctx, runID, result); err != nil {
				slog.Error("failed to persist result", "conversation_id", idx, "error", err)
				os.Exit(1)
			}
		}
		if alerts != nil {
			if _, err := alerts.PublishHighRisk(runID, result); err != nil {
				slog.Warn("failed to publish alert", "conversation_id", idx, "error", err)
			}
		}
	}

	if err := export.WriteCSV(*output, results); err != nil {
		slog.Error("failed to write CSV", "path", *output, "error", err)
		os.Exit(1)
	}

	slog.Info("analysis complete",
		"conversations", len(results),
		"high_risk", highRisk,
		"output", *output,
	)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
