// One-shot gateway inventory sync, for cron or manual runs. The API serves
// the same operation at POST /api/admin/sync.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"smarthjem/internal/adapters/beds24"
	"smarthjem/internal/adapters/observability"
	redisad "smarthjem/internal/adapters/redis"
	"smarthjem/internal/app"
	"smarthjem/internal/domain"
	"smarthjem/internal/shared"
	"smarthjem/internal/storage/postgres"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.Beds24Base).
		Int("workers", cfg.SyncWorkers).
		Msg("sync starting")

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required, a one-shot sync into the in-memory store would be lost")
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	repo := postgres.New(pool)
	log.Info().Msg("database connection ok")

	var cache domain.Cache = app.NopCache{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	channel := beds24.New(cfg.Beds24Base, cfg.Beds24RefreshToken, cfg.Beds24WriteRefreshToken, 5)
	if !channel.Configured() {
		log.Fatal().Msg("BEDS24_REFRESH_TOKEN is required for a sync run")
	}

	catalog := app.NewCatalogService(repo, cache, channel, cfg.SyncWorkers)
	n, err := catalog.SyncFromChannel(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sync failed")
	}
	log.Info().Int("synced", n).Msg("sync completed")
}
