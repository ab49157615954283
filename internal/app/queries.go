package app

import (
	"context"
	"fmt"
	"time"

	"smarthjem/internal/domain"
)

const listCacheKey = "properties:all"

func propertyCacheKey(id string) string { return fmt.Sprintf("property:%s", id) }

// QueryService serves the public catalog reads through a cache-aside layer.
type QueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// ListProperties returns the full catalog, unavailable records included;
// callers wanting "available only" filter client-side.
func (s *QueryService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var cached []domain.Property
	if ok, _ := s.cache.Get(ctx, listCacheKey, &cached); ok {
		return cached, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// copy to avoid aliasing the repo's backing slice
	out := make([]domain.Property, len(list))
	copy(out, list)
	_ = s.cache.Set(ctx, listCacheKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := propertyCacheKey(id)
	var cached domain.Property
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}
