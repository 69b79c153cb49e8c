package catalog

import (
	"fmt"
	"math"

	"hobby_catalog/internal/domain"
)

const (
	MaxRating = 5.0
	starCount = 5
)

// StarsFor renders rating as exactly five star states.
func StarsFor(rating float64) []domain.StarState {
	rating = ClampRating(rating)
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5

	out := make([]domain.StarState, starCount)
	for i := range out {
		switch {
		case i < full:
			out[i] = domain.StarFull
		case i == full && half:
			out[i] = domain.StarHalf
		default:
			out[i] = domain.StarEmpty
		}
	}
	return out
}

// ClampRating bounds r to [0,5]; NaN becomes 0.
func ClampRating(r float64) float64 {
	switch {
	case math.IsNaN(r) || r < 0:
		return 0
	case r > MaxRating:
		return MaxRating
	}
	return r
}

// RatingLabel formats a rating with exactly one decimal ("4.9").
func RatingLabel(r float64) string {
	return fmt.Sprintf("%.1f", ClampRating(r))
}

// CountSuffix formats a sample count as "(116)".
func CountSuffix(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("(%d)", n)
}

// RatingView is the rendered rating row shared by cards and the detail header.
type RatingView struct {
	Value float64            `json:"value"`
	Label string             `json:"label"`
	Stars []domain.StarState `json:"stars"`
	Count string             `json:"count,omitempty"`
}

// RenderRating builds a RatingView. A nil count omits the suffix.
func RenderRating(r float64, count *int) RatingView {
	v := RatingView{Value: ClampRating(r), Label: RatingLabel(r), Stars: StarsFor(r)}
	if count != nil {
		v.Count = CountSuffix(*count)
	}
	return v
}
