package pipeline

import (
	"context"
	"log/slog"

	"github.com/BFavetto/fars/internal/domain"
	"github.com/BFavetto/fars/internal/observability"
)

// YearLoader resolves a year to its file and loads it.
type YearLoader interface {
	LoadYear(y domain.Year) (*domain.YearTable, error)
}

// Canvas draws a prepared state map.
type Canvas interface {
	Draw(ctx context.Context, m domain.StateMap) error
}

// Pipeline wires loading, summarizing, and map rendering together.
// All operations run synchronously on the calling goroutine.
type Pipeline struct {
	loader  YearLoader
	canvas  Canvas
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(loader YearLoader, canvas Canvas, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:  loader,
		canvas:  canvas,
		logger:  logger,
		metrics: metrics,
	}
}
