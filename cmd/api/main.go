package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"smarthjem/internal/adapters/beds24"
	server "smarthjem/internal/adapters/http_server"
	"smarthjem/internal/adapters/mailer"
	"smarthjem/internal/adapters/observability"
	redisad "smarthjem/internal/adapters/redis"
	"smarthjem/internal/app"
	"smarthjem/internal/domain"
	"smarthjem/internal/shared"
	"smarthjem/internal/storage/memstore"
	"smarthjem/internal/storage/postgres"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// storage: Postgres when a URL is configured, otherwise the in-memory
	// catalog with the curated seed
	var (
		repo      domain.PropertyRepository
		inquiries domain.InquiryLog
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect failed")
		}
		defer pool.Close()
		pg := postgres.New(pool)
		repo, inquiries = pg, pg
		log.Info().Msg("database connection ok")
	} else {
		mem := memstore.New()
		repo, inquiries = mem, mem
		log.Info().Msg("no DATABASE_URL, using in-memory catalog")
	}

	var cache domain.Cache = app.NopCache{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	channel := beds24.New(cfg.Beds24Base, cfg.Beds24RefreshToken, cfg.Beds24WriteRefreshToken, 5)
	notifier := mailer.New(cfg.MailerSendAPIKey, cfg.MailFromName, cfg.MailFrom, cfg.BookingInbox)

	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	catalog := app.NewCatalogService(repo, cache, channel, cfg.SyncWorkers)
	inq := app.NewInquiryService(inquiries, repo, channel, notifier)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:         q,
		Catalog:   catalog,
		Inquiries: inq,
		Channel:   channel,
		AdminKey:  cfg.AdminAPIKey,
	})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Bool("beds24", channel.Configured()).
		Bool("mailer", notifier.Enabled()).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
