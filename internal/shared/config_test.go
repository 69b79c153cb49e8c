package shared_test

import (
	"testing"
	"time"

	"hobby_catalog/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "MYSQL_DSN", "DETAIL_MODE", "CACHE_TTL_SECONDS", "SEED_WORKERS", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}
	c := shared.Load()
	if c.DetailMode != shared.DetailPlaceholder {
		t.Fatalf("mode=%s", c.DetailMode)
	}
	if c.CacheTTL != 15*time.Minute || c.HTTPAddr != ":8080" || c.SeedWorkers != 8 || c.RateLimitRPS != 50 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_LookupNeedsMySQL(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("DETAIL_MODE", "LOOKUP")
	if c := shared.Load(); c.DetailMode != shared.DetailPlaceholder {
		t.Fatalf("mode=%s", c.DetailMode)
	}

	t.Setenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/catalog")
	if c := shared.Load(); c.DetailMode != shared.DetailLookup {
		t.Fatalf("mode=%s", c.DetailMode)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DETAIL_MODE", "psychic")
	t.Setenv("CACHE_TTL_SECONDS", "soon")
	t.Setenv("SEED_WORKERS", "0")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	c := shared.Load()
	if c.DetailMode != shared.DetailPlaceholder || c.CacheTTL != 15*time.Minute || c.SeedWorkers != 1 || c.RateLimitRPS != 2.5 {
		t.Fatalf("unexpected config: %+v", c)
	}
}
