package domain

// NamedCatalogList is a titled ranked list; Items[0] is the most relevant.
type NamedCatalogList struct {
	Slug  string                `json:"slug"`
	Title string                `json:"title"`
	Items []EstablishmentRecord `json:"items"`
}

// Category is one tile of the home category grid.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ImageRef ImageRef `json:"imageRef"`
}

// StarState is one glyph of a five-star rating row.
type StarState string

const (
	StarFull  StarState = "full"
	StarHalf  StarState = "half"
	StarEmpty StarState = "empty"
)

// VisualTreatmentID names a decorative placeholder style for a list card.
type VisualTreatmentID string
