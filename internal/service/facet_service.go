package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/config"
	"github.com/packworks/coursecat-backend/internal/model"
	"github.com/packworks/coursecat-backend/internal/repository"
)

// facetCacheTTL caps staleness if the facet worker dies; the worker
// refreshes well inside this window.
const facetCacheTTL = 2 * time.Hour

// FacetService serves the search form's dropdown lists Redis-first with
// a PostgreSQL fallback that writes the cache back.
type FacetService struct {
	facetRepo *repository.FacetRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

func NewFacetService(facetRepo *repository.FacetRepository, rdb *redis.Client, log zerolog.Logger) *FacetService {
	return &FacetService{
		facetRepo: facetRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "facet_service").Logger(),
	}
}

// GetFacets returns the cached facet lists, recomputing and re-caching
// on a miss.
func (s *FacetService) GetFacets(ctx context.Context) (*model.Facets, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.FacetsKey()).Result()
	if err == nil {
		f := &model.Facets{}
		if err := json.Unmarshal([]byte(raw), f); err == nil {
			return f, nil
		}
		// Corrupt cache entry: fall through and rebuild.
		s.log.Warn().Msg("Discarding unreadable facet cache entry")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("Facet cache read failed, falling back to PostgreSQL")
	}

	return s.Warm(ctx)
}

// Warm recomputes the facet lists from PostgreSQL and stores them in
// Redis. Used by the facet worker and on startup.
func (s *FacetService) Warm(ctx context.Context) (*model.Facets, error) {
	f, err := s.facetRepo.GetFacets(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, config.CacheKey.FacetsKey(), payload, facetCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Facet cache write failed")
	}
	return f, nil
}
