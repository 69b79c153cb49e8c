package catalog_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

func TestDetailRoute_RoundTrip(t *testing.T) {
	rec := catalog.Generate(5, 0)[4]
	route := catalog.DetailRoute(catalog.ParamsFor(rec))

	u, err := url.Parse(route)
	if err != nil {
		t.Fatalf("parse %q: %v", route, err)
	}
	if u.Path != catalog.DetailPath {
		t.Fatalf("path=%s", u.Path)
	}
	got := catalog.ParseDetailParams(u.Query())
	if diff := cmp.Diff(catalog.ParamsFor(rec), got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	// "Art & Craft Lab 1" must survive the ampersand
	if *got.Name != "Art & Craft Lab 1" {
		t.Fatalf("name=%q", *got.Name)
	}
}

func TestDetailRoute_NoParams(t *testing.T) {
	if got := catalog.DetailRoute(domain.DetailParams{}); got != catalog.DetailPath {
		t.Fatalf("route=%s", got)
	}
	p := catalog.ParseDetailParams(url.Values{})
	if p.ID != nil || p.Name != nil {
		t.Fatalf("expected absent params: %+v", p)
	}
}

func TestParseDetailParams_EmptyValuesAreAbsent(t *testing.T) {
	p := catalog.ParseDetailParams(url.Values{"id": {""}, "name": {""}})
	if p.ID != nil || p.Name != nil {
		t.Fatalf("empty query values should not become overrides: %+v", p)
	}
	// so the hydrated detail keeps the base identity
	got := catalog.Hydrate(catalog.DefaultDetail(), p.ID, p.Name)
	if got.ID != "est-001" || got.Name != "Milli Trims" {
		t.Fatalf("identity=%s %s", got.ID, got.Name)
	}
}
