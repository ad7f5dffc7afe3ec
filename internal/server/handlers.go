package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/kensaku/internal/models"
	"github.com/hyperjump/kensaku/internal/query"
)

// maxRequestBody caps how much of an inbound body is read.
const maxRequestBody = 1 << 20

// handleSearch runs the full pipeline: parse, normalize, backend call,
// transform, serialize. Backend and template failures degrade to an empty
// result document with took_ms still measured; callers always get 200.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	searchID := uuid.NewString()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req := query.ParseRequest(string(body), s.cfg.Engine.SearchCount)
	clean := query.Normalize(req.Query, req.Queries)
	s.logger.Info("search request",
		zap.String("search_id", searchID),
		zap.String("query", clean),
		zap.Int("count", req.Count),
		zap.String("engine", s.engine.Name()))

	var results []models.SearchResult
	if clean == "" {
		s.logger.Warn("empty query after normalization", zap.String("search_id", searchID))
	} else {
		results, err = s.engine.Search(r.Context(), clean, req.Count)
		if err != nil {
			// Degrade, don't fail: backend outages become empty result sets.
			s.logger.Error("backend search failed",
				zap.String("search_id", searchID),
				zap.Error(err))
			results = nil
		}
	}

	tookMS := time.Since(start).Milliseconds()
	resp := models.NewSearchResponse(results, tookMS, s.engine.Name())
	s.logger.Info("search response",
		zap.String("search_id", searchID),
		zap.Int("results", resp.Total),
		zap.Int64("took_ms", tookMS))
	s.respondJSON(w, http.StatusOK, resp)
}

// statusDoc is the GET / service document. Field order is stable.
type statusDoc struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, statusDoc{
		Status:  "running",
		Service: "kensaku",
		Version: s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.respondError(w, http.StatusNotFound, "Not Found")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
