// Package engine fronts the remote full-text search backend.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hyperjump/kensaku/internal/config"
	"github.com/hyperjump/kensaku/internal/models"
	"github.com/hyperjump/kensaku/internal/template"
)

// Engine executes a normalized query against a search backend and returns
// reshaped results. An error means the backend (or its query template) is
// unavailable; the caller decides whether to surface or degrade.
type Engine interface {
	Search(ctx context.Context, searchQuery string, limit int) ([]models.SearchResult, error)
	Name() string
}

// New returns the engine for the configured type.
func New(cfg *config.EngineConfig, store *template.Store, logger *zap.Logger) (Engine, error) {
	switch cfg.Type {
	case "", "manticore":
		return NewManticore(cfg, store, logger), nil
	default:
		return nil, fmt.Errorf("unknown engine type %q", cfg.Type)
	}
}
