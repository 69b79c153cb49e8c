package catalog

import (
	"github.com/paulmach/orb"

	"hobby_catalog/internal/domain"
)

// DefaultDetail is the base record every placeholder detail screen is
// hydrated from. It returns a fresh value on each call.
func DefaultDetail() domain.EstablishmentDetail {
	return domain.EstablishmentDetail{
		EstablishmentRecord: domain.EstablishmentRecord{
			ID:       "est-001",
			Name:     "Milli Trims",
			Area:     "Saar",
			Category: "Barber",
			Rating:   4.9,
		},
		HeroImageRef: "https://picsum.photos/1200/800",
		RatingCount:  116,
		Address:      "saar centre, Saar",
		Activities: []domain.Activity{
			{ID: "a1", Name: "Haircut & Beard Trim (with washing)", PriceLabel: "BHD 6.50"},
			{ID: "a2", Name: "Hair Cut", PriceLabel: "BHD 4.50"},
			{ID: "a3", Name: "Kids Haircut (under 12 years)", PriceLabel: "BHD 3.50"},
			{ID: "a4", Name: "Beard Trim", PriceLabel: "BHD 3.50"},
		},
		Team: []domain.TeamMember{
			{ID: "t1", Name: "Ali Hasan"},
			{ID: "t2", Name: "Mo Noor"},
			{ID: "t3", Name: "Zaid Ahmed"},
			{ID: "t4", Name: "Faisal Rahim"},
		},
		About: "Your go-to place for modern barbering. We blend sophistication with comfort, " +
			"ensuring every visit is enjoyable. Whether you're after a classic cut or a trendy new style, " +
			"we cater to all tastes with precision and flair.",
		Contact: domain.ContactInfo{
			Phone:   strPtr("+973 3333 3333"),
			Email:   strPtr("hello@millitrims.example"),
			Website: strPtr("https://millitrims.example"),
			Address: strPtr("saar centre, Saar, Bahrain"),
		},
		Location: &domain.Location{
			Point:   orb.Point{50.5108481, 26.0509557},
			SpanDeg: 0.01,
			Title:   "University of Bahrain",
		},
	}
}

func strPtr(s string) *string { return &s }
