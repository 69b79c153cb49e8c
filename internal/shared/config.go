package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DetailMode selects how the detail screen resolves navigation params.
type DetailMode string

const (
	// DetailPlaceholder hydrates a fixed base record; unknown ids are not detected.
	DetailPlaceholder DetailMode = "placeholder"
	// DetailLookup reads the record from MySQL and 404s on unknown ids.
	DetailLookup DetailMode = "lookup"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	DetailMode     DetailMode
	RateLimitRPS   float64
	RateLimitBurst int
	SeedWorkers    int
	SeedFile       string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not a number, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		DetailMode:     DetailMode(strings.ToLower(env("DETAIL_MODE", string(DetailPlaceholder)))),
		RateLimitRPS:   atof("RATE_LIMIT_RPS", 50),
		RateLimitBurst: atoi("RATE_LIMIT_BURST", 100),
		SeedWorkers:    atoi("SEED_WORKERS", 8),
		SeedFile:       env("SEED_FILE", ""),
	}
	if c.DetailMode != DetailPlaceholder && c.DetailMode != DetailLookup {
		log.Warn().Str("mode", string(c.DetailMode)).Msg("unknown DETAIL_MODE, using placeholder")
		c.DetailMode = DetailPlaceholder
	}
	if c.DetailMode == DetailLookup && c.MySQLDSN == "" {
		log.Warn().Msg("DETAIL_MODE=lookup needs MYSQL_DSN, using placeholder")
		c.DetailMode = DetailPlaceholder
	}
	if c.SeedWorkers <= 0 {
		c.SeedWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
