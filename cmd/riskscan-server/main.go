package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/alert"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/api"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/catalog"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/config"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
	"github.com/tinomuzo99/ai-solutions-assignment/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("riskscan starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalogs — invalid configuration is fatal at startup.
	hiv, mentalHealth, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		slog.Error("invalid catalog configuration", "error", err)
		os.Exit(1)
	}
	analyzer := risk.NewAnalyzer(hiv, mentalHealth)
	slog.Info("catalogs ready",
		"hiv_categories", len(hiv.Categories),
		"mental_health_categories", len(mentalHealth.Categories),
	)

	// Database (optional — the analyze endpoint works without it, just
	// no stored results).
	var db api.ResultStore
	if cfg.DatabaseURL != "" {
		s, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer s.Close()
		db = s
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without stored results")
	}

	// NATS (optional — a configured but unreachable broker is fatal).
	var alerts api.AlertSink
	if cfg.NatsURL != "" {
		p, err := alert.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer p.Close()
		alerts = p
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — running without high-risk alerts")
	}

	srv := api.NewServer(cfg.Port, analyzer, db, alerts)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("riskscan ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("riskscan stopped")
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
