package app

import (
	"github.com/paulmach/orb"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

// CardView is one card in a horizontal list.
type CardView struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Area      string                   `json:"area"`
	Category  string                   `json:"category"`
	Rating    catalog.RatingView       `json:"rating"`
	Treatment domain.VisualTreatmentID `json:"treatment"`
	Route     string                   `json:"route"`
}

type ListView struct {
	Slug  string     `json:"slug"`
	Title string     `json:"title"`
	Items []CardView `json:"items"`
}

type HomeView struct {
	Lists      []ListView          `json:"lists"`
	Categories [][]domain.Category `json:"categories"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapView struct {
	Center LatLon `json:"center"`
	SW     LatLon `json:"sw"`
	NE     LatLon `json:"ne"`
	Title  string `json:"title,omitempty"`
}

type DetailView struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Area           string                  `json:"area"`
	Category       string                  `json:"category"`
	HeroImageRef   domain.ImageRef         `json:"heroImageRef"`
	Rating         catalog.RatingView      `json:"rating"`
	Address        string                  `json:"address"`
	Activities     []domain.Activity       `json:"activities"`
	Team           []domain.TeamMember     `json:"team"`
	About          string                  `json:"about"`
	Contact        []catalog.ContactAction `json:"contact"`
	Map            *MapView                `json:"map,omitempty"`
	DistanceMeters *float64                `json:"distanceMeters,omitempty"`
}

// mapList caps again before rendering; capping twice is a no-op.
func mapList(l domain.NamedCatalogList) ListView {
	l = catalog.Cap(l, catalog.MaxListItems)
	out := ListView{Slug: l.Slug, Title: l.Title, Items: make([]CardView, len(l.Items))}
	for i, rec := range l.Items {
		out.Items[i] = CardView{
			ID:        rec.ID,
			Name:      rec.Name,
			Area:      rec.Area,
			Category:  rec.Category,
			Rating:    catalog.RenderRating(rec.Rating, nil),
			Treatment: catalog.Treatment(i),
			Route:     catalog.DetailRoute(catalog.ParamsFor(rec)),
		}
	}
	return out
}

func mapDetail(d domain.EstablishmentDetail, from *orb.Point) DetailView {
	count := d.RatingCount
	v := DetailView{
		ID:           d.ID,
		Name:         d.Name,
		Area:         d.Area,
		Category:     d.Category,
		HeroImageRef: d.HeroImageRef,
		Rating:       catalog.RenderRating(d.Rating, &count),
		Address:      d.Address,
		Activities:   d.Activities,
		Team:         d.Team,
		About:        d.About,
		Contact:      catalog.ContactActions(d.Contact),
	}
	if d.Location != nil {
		b := catalog.MapRegion(*d.Location)
		v.Map = &MapView{
			Center: latLon(d.Location.Point),
			SW:     latLon(b.Min),
			NE:     latLon(b.Max),
			Title:  d.Location.Title,
		}
		if from != nil {
			m := catalog.DistanceMeters(*from, d.Location.Point)
			v.DistanceMeters = &m
		}
	}
	return v
}

func latLon(p orb.Point) LatLon { return LatLon{Lat: p.Lat(), Lon: p.Lon()} }
