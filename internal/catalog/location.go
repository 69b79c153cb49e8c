package catalog

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"hobby_catalog/internal/domain"
)

// MapRegion is the bound the static map shows: SpanDeg wide and tall,
// centred on the pin.
func MapRegion(loc domain.Location) orb.Bound {
	h := loc.SpanDeg / 2
	return orb.Bound{
		Min: orb.Point{loc.Point.Lon() - h, loc.Point.Lat() - h},
		Max: orb.Point{loc.Point.Lon() + h, loc.Point.Lat() + h},
	}
}

// DistanceMeters is the great-circle distance between two [lon, lat] points.
func DistanceMeters(from, to orb.Point) float64 {
	return geo.Distance(from, to)
}
