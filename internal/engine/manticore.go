package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/kensaku/internal/config"
	"github.com/hyperjump/kensaku/internal/models"
	"github.com/hyperjump/kensaku/internal/template"
	"github.com/hyperjump/kensaku/pkg/utils"
)

// maxResponseSize caps how much of a backend response is read.
const maxResponseSize = 2 << 20

// Manticore talks to a Manticore Search JSON API endpoint. Request bodies are
// rendered from the cached query template; responses are transformed into
// gateway results.
type Manticore struct {
	cfg    *config.EngineConfig
	store  *template.Store
	client *http.Client
	logger *zap.Logger
}

// NewManticore creates a Manticore engine with a bounded request timeout.
func NewManticore(cfg *config.EngineConfig, store *template.Store, logger *zap.Logger) *Manticore {
	return &Manticore{
		cfg:    cfg,
		store:  store,
		client: &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

// Name returns the engine identifier reported on every response document.
func (m *Manticore) Name() string {
	return "manticore"
}

// Search renders the query template, posts it to the backend exactly once,
// and transforms the hits. No retries.
func (m *Manticore) Search(ctx context.Context, searchQuery string, limit int) ([]models.SearchResult, error) {
	tmpl, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	body, err := template.Render(tmpl, m.cfg.IndexName, searchQuery, limit)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("backend request",
		zap.String("endpoint", m.cfg.Endpoint()),
		zap.String("body", body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint(), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}
	m.logger.Debug("backend response",
		zap.Int("status", resp.StatusCode),
		zap.Int("length", len(raw)),
		zap.String("body", utils.Truncate(string(raw), 500)))

	return Transform(string(raw), limit, m.cfg.SnippetLength, m.cfg.ReturnURL), nil
}
