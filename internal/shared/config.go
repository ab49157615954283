package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Postgres. Empty means the in-memory catalog with the curated seed.
	DatabaseURL string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	Beds24Base         string
	Beds24RefreshToken string
	// Optional write-scoped credential; bookings fall back to the read
	// credential when absent.
	Beds24WriteRefreshToken string

	MailerSendAPIKey string
	MailFrom         string
	MailFromName     string
	BookingInbox     string

	AdminAPIKey string
	SyncWorkers int
}

func Load() Config {
	// Local dev convenience; the file is absent in prod.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),

		DatabaseURL: env("DATABASE_URL", ""),

		RedisAddr: env("REDIS_ADDR", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		RedisPass: env("REDIS_PASSWORD", ""),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		Beds24Base:              env("BEDS24_BASE_URL", "https://api.beds24.com/v2"),
		Beds24RefreshToken:      env("BEDS24_REFRESH_TOKEN", ""),
		Beds24WriteRefreshToken: env("BEDS24_WRITE_REFRESH_TOKEN", ""),

		MailerSendAPIKey: env("MAILERSEND_API_KEY", ""),
		MailFrom:         env("MAIL_FROM", ""),
		MailFromName:     env("MAIL_FROM_NAME", "Smarthjem Sør"),
		BookingInbox:     env("BOOKING_INBOX", ""),

		AdminAPIKey: env("ADMIN_API_KEY", ""),
		SyncWorkers: atoi("SYNC_WORKERS", 4),
	}
	if c.Beds24RefreshToken == "" {
		log.Warn().Msg("BEDS24_REFRESH_TOKEN is empty, gateway features disabled")
	}
	if c.MailerSendAPIKey == "" {
		log.Warn().Msg("MAILERSEND_API_KEY is empty, booking emails disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
