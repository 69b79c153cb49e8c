package domain

import "github.com/paulmach/orb"

// ImageRef is an opaque image handle: a bundled asset name or a remote URL.
// Nothing in this module interprets it.
type ImageRef string

// EstablishmentRecord is the summary shown on a list card.
type EstablishmentRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Area     string  `json:"area"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"` // 0..5
}

type Activity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DurationLabel *string `json:"durationLabel,omitempty"`
	PriceLabel    string  `json:"priceLabel"`
}

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      *string   `json:"role,omitempty"`
	AvatarRef *ImageRef `json:"avatarRef,omitempty"`
}

// ContactInfo fields are independently optional; nil means the channel is not rendered.
type ContactInfo struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Location is the static map pin shown on the detail screen.
type Location struct {
	Point   orb.Point `json:"point"` // [lon, lat]
	SpanDeg float64   `json:"spanDeg"`
	Title   string    `json:"title,omitempty"`
}

type EstablishmentDetail struct {
	EstablishmentRecord
	HeroImageRef ImageRef     `json:"heroImageRef"`
	RatingCount  int          `json:"ratingCount"` // >= 0
	Address      string       `json:"address"`
	Activities   []Activity   `json:"activities"`
	Team         []TeamMember `json:"team"`
	About        string       `json:"about"`
	Contact      ContactInfo  `json:"contact"`
	Location     *Location    `json:"location,omitempty"`
}

// DetailParams is what crosses the navigation boundary from a list tap to
// the detail screen. Both fields are optional.
type DetailParams struct {
	ID   *string
	Name *string
}
