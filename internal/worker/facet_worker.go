package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/service"
)

// FacetWorker periodically recomputes the cached search-form facet
// lists so dropdown requests never hit PostgreSQL on the hot path.
type FacetWorker struct {
	facets   *service.FacetService
	interval time.Duration
	log      zerolog.Logger
}

func NewFacetWorker(facets *service.FacetService, interval time.Duration, log zerolog.Logger) *FacetWorker {
	return &FacetWorker{
		facets:   facets,
		interval: interval,
		log:      log.With().Str("component", "facet_worker").Logger(),
	}
}

// Start runs the refresh loop until ctx is cancelled. The first refresh
// happens after one full interval; callers warm the cache at startup.
func (w *FacetWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("FacetWorker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("FacetWorker stopped")
			return
		case <-ticker.C:
			if _, err := w.facets.Warm(ctx); err != nil {
				w.log.Error().Err(err).Msg("Facet refresh failed")
			}
		}
	}
}
