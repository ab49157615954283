package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"smarthjem/internal/domain"
)

// CatalogService owns the write side of the catalog: admin CRUD and the
// channel-manager inventory sync. Every write evicts the affected cache keys.
type CatalogService struct {
	repo    domain.PropertyRepository
	cache   domain.Cache
	channel domain.ChannelClient
	workers int
}

func NewCatalogService(r domain.PropertyRepository, c domain.Cache, ch domain.ChannelClient, workers int) *CatalogService {
	if workers <= 0 {
		workers = 4
	}
	return &CatalogService{repo: r, cache: c, channel: ch, workers: workers}
}

func (s *CatalogService) CreateProperty(ctx context.Context, p domain.Property) error {
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.ID)
	return nil
}

// UpdateProperty replaces an existing record. The identifier is immutable:
// the id argument wins over whatever the payload carries.
func (s *CatalogService) UpdateProperty(ctx context.Context, id string, p domain.Property) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	p.ID = id
	if err := s.repo.Upsert(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CatalogService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// SyncFromChannel pulls the flattened channel-manager inventory and upserts
// each record. Returns the number of records written.
func (s *CatalogService) SyncFromChannel(ctx context.Context) (int, error) {
	props, err := s.channel.FetchProperties(ctx)
	if err != nil {
		return 0, err
	}
	if len(props) == 0 {
		log.Info().Msg("channel sync: nothing to import")
		return 0, nil
	}

	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	synced := 0

	for _, p := range props {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(p domain.Property) {
			defer wg.Done()
			defer sem.Release(1)
			if err := s.repo.Upsert(ctx, p); err != nil {
				log.Warn().Str("id", p.ID).Err(err).Msg("channel sync: upsert failed")
				return
			}
			s.invalidate(ctx, p.ID)
			mu.Lock()
			synced++
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	log.Info().Int("synced", synced).Int("fetched", len(props)).Msg("channel sync done")
	return synced, nil
}

func (s *CatalogService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, listCacheKey)
	_ = s.cache.Del(ctx, propertyCacheKey(id))
}
