package app

import "context"

// NopCache satisfies domain.Cache when no Redis address is configured. Every
// read is a miss.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (NopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (NopCache) Del(ctx context.Context, key string) error { return nil }
