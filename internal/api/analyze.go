package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tinomuzo99/ai-solutions-assignment/internal/risk"
)

// AnalyzeRequest is the payload for synchronous single-conversation
// analysis.
type AnalyzeRequest struct {
	Conversation string `json:"conversation"`
}

// AnalyzeResponse is the analysis result, plus the run ID when the
// result was persisted.
type AnalyzeResponse struct {
	risk.Result
	RunID string `json:"run_id,omitempty"`
}

// analyze handles POST /api/v1/analyze. The conversation is scored
// in-request; when a store is attached the result is persisted under a
// fresh run, and when an alert sink is attached high-risk domains are
// published.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Conversation == "" {
		writeError(w, http.StatusBadRequest, "conversation is required")
		return
	}

	result := s.analyzer.Analyze(0, req.Conversation)

	runID := uuid.New()
	persisted := false
	if s.db != nil {
		id, err := s.db.CreateRun(r.Context(), "api")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "create run failed")
			return
		}
		runID = id
		if err := s.db.InsertResult(r.Context(), runID, result); err != nil {
			writeError(w, http.StatusInternalServerError, "persist result failed")
			return
		}
		persisted = true
	}

	// Alert failures don't fail the request; the analysis already
	// happened and the caller has the result.
	if s.alerts != nil {
		if _, err := s.alerts.PublishHighRisk(runID, result); err != nil {
			slog.Warn("failed to publish alert", "error", err)
		}
	}

	resp := AnalyzeResponse{Result: result}
	if persisted {
		resp.RunID = runID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// results handles GET /api/v1/results?run_id=...&limit=...
func (s *Server) results(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusNotImplemented, "no database configured")
		return
	}

	runID, err := uuid.Parse(r.URL.Query().Get("run_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run_id")
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	results, err := s.db.ListResults(r.Context(), runID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query results failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":  runID.String(),
		"count":   len(results),
		"results": results,
	})
}
