package catalog_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

func TestMapRegion(t *testing.T) {
	loc := domain.Location{Point: orb.Point{50.5, 26.0}, SpanDeg: 0.01}
	b := catalog.MapRegion(loc)
	if !b.Contains(loc.Point) {
		t.Fatalf("region %v does not contain its centre", b)
	}
	if w := b.Max.Lon() - b.Min.Lon(); math.Abs(w-0.01) > 1e-9 {
		t.Fatalf("width=%v", w)
	}
	if c := b.Center(); math.Abs(c.Lat()-26.0) > 1e-9 || math.Abs(c.Lon()-50.5) > 1e-9 {
		t.Fatalf("center=%v", c)
	}
}

func TestDistanceMeters(t *testing.T) {
	p := orb.Point{50.5108481, 26.0509557}
	if d := catalog.DistanceMeters(p, p); d != 0 {
		t.Fatalf("same point distance=%v", d)
	}
	// one degree of latitude is roughly 111km
	d := catalog.DistanceMeters(orb.Point{50, 26}, orb.Point{50, 27})
	if d < 110_000 || d > 112_500 {
		t.Fatalf("distance=%v", d)
	}
}
