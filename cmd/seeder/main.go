package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hobby_catalog/internal/adapters/observability"
	redisad "hobby_catalog/internal/adapters/redis"
	"hobby_catalog/internal/app"
	"hobby_catalog/internal/domain"
	"hobby_catalog/internal/shared"
	mysqlrepo "hobby_catalog/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}
	seeder := app.NewSeedService(repo, cache)

	items := app.GeneratedDetails()
	if cfg.SeedFile != "" {
		items = loadFile(cfg.SeedFile)
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for _, it := range items {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(it app.SeedItem) {
			defer wg.Done()
			defer sem.Release(1)

			err := seeder.SeedOne(ctx, it)
			observability.ObserveSeed(err)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("id", it.Detail.ID).Err(err).Msg("seed failed")
				return
			}
			log.Debug().Str("id", it.Detail.ID).Int("position", it.Position).Msg("seed ok")
		}(it)
	}

	wg.Wait()
	seeder.InvalidateLists(ctx)

	log.Info().Int("records", len(items)).Int64("failed", failed.Load()).Msg("seeding completed")
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

// loadFile reads a JSON array of loosely-shaped establishment objects.
// Invalid records are logged and skipped.
func loadFile(path string) []app.SeedItem {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("read seed file failed")
	}
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("seed file is not a JSON array of objects")
	}
	items, err := app.DecodeRecords(raw)
	if err != nil {
		log.Warn().Err(err).Int("kept", len(items)).Int("total", len(raw)).Msg("some seed records rejected")
	}
	return items
}
