package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

// ResultStore is the persistence surface the API needs; *store.Store
// implements it.
type ResultStore interface {
	CreateRun(ctx context.Context, source string) (uuid.UUID, error)
	InsertResult(ctx context.Context, runID uuid.UUID, r risk.Result) error
	ListResults(ctx context.Context, runID uuid.UUID, limit int) ([]risk.Result, error)
}

// AlertSink receives high-risk notifications; *alert.Publisher
// implements it.
type AlertSink interface {
	PublishHighRisk(runID uuid.UUID, r risk.Result) (int, error)
}

type Server struct {
	router   *chi.Mux
	port     int
	analyzer *risk.Analyzer
	db       ResultStore // optional; nil disables stored-result endpoints
	alerts   AlertSink   // optional; nil disables high-risk alerts
}

// NewServer builds the HTTP API. db and alerts may be nil when the
// corresponding collaborator is not configured.
func NewServer(port int, analyzer *risk.Analyzer, db ResultStore, alerts AlertSink) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		analyzer: analyzer,
		db:       db,
		alerts:   alerts,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/riskscan/status", s.status)
	router.Post("/api/v1/analyze", s.analyze)
	router.Get("/api/v1/results", s.results)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	hiv, mh := s.analyzer.CatalogSizes()
	writeJSON(w, http.StatusOK, map[string]any{
		"service":                  "riskscan",
		"status":                   "ok",
		"hiv_categories":           hiv,
		"mental_health_categories": mh,
		"store":                    s.db != nil,
		"alerts":                   s.alerts != nil,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
