package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "hobby_catalog/internal/adapters/http_server"
	"hobby_catalog/internal/adapters/notify"
	"hobby_catalog/internal/adapters/observability"
	redisad "hobby_catalog/internal/adapters/redis"
	"hobby_catalog/internal/app"
	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
	"hobby_catalog/internal/shared"
	mysqlrepo "hobby_catalog/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// cache is optional
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, running without cache")
		} else {
			cache = rc
			defer rc.Close()
		}
	}

	// catalog source: MySQL when configured, the generator otherwise
	var source domain.CatalogSource = catalog.Generator{}
	resolver := app.Resolver(app.NewPlaceholderResolver())
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		defer db.Close()
		log.Info().Msg("database connection ok")

		repo := mysqlrepo.New(db)
		source = repo
		if cfg.DetailMode == shared.DetailLookup {
			resolver = app.NewLookupResolver(repo, cache, cfg.CacheTTL)
		}
	} else {
		// generator output is deterministic; caching it buys nothing
		cache = nil
	}
	log.Info().Str("detail_mode", string(cfg.DetailMode)).Bool("mysql", cfg.MySQLDSN != "").Bool("cache", cache != nil).Msg("catalog configured")

	// http
	srv := server.New(server.Options{
		Timeout:   cfg.RequestTimeout,
		RateLimit: rate.Limit(cfg.RateLimitRPS),
		Burst:     cfg.RateLimitBurst,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Home:    app.NewHomeService(source, cache, cfg.CacheTTL),
		Detail:  app.NewDetailService(resolver),
		Booking: app.NewBookingService(resolver, notify.NewLogNotifier(log.Logger)),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
