package catalog

import (
	"fmt"

	"hobby_catalog/internal/domain"
)

// DefaultGridColumns matches the two-column home category grid.
const DefaultGridColumns = 2

var categories = []domain.Category{
	{ID: "c1", Name: "Sports & fitness", ImageRef: "categories/sports.jpeg"},
	{ID: "c2", Name: "Water activities", ImageRef: "categories/swimming.jpeg"},
	{ID: "c3", Name: "Arts & crafts", ImageRef: "categories/arts.jpeg"},
	{ID: "c4", Name: "Music & performing arts", ImageRef: "categories/music.jpeg"},
	{ID: "c5", Name: "Cooking", ImageRef: "categories/cooking.jpg"},
	{ID: "c6", Name: "Technology & coding", ImageRef: "categories/technology.jpg"},
	{ID: "c7", Name: "Languages", ImageRef: "categories/language.jpeg"},
	{ID: "c8", Name: "Outdoor & adventure", ImageRef: "categories/outdoor.jpg"},
	{ID: "c9", Name: "Chess & board games", ImageRef: "categories/chess.jpg"},
	{ID: "c10", Name: "Photography & media", ImageRef: "categories/photography.jpeg"},
}

// Categories returns a copy of the hand-authored category list.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// Layout groups categories into rows of columns items; the last row may be short.
func Layout(cats []domain.Category, columns int) ([][]domain.Category, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("layout columns %d: %w", columns, domain.ErrInvalidArgument)
	}
	rows := make([][]domain.Category, 0, (len(cats)+columns-1)/columns)
	for start := 0; start < len(cats); start += columns {
		end := min(start+columns, len(cats))
		row := make([]domain.Category, end-start)
		copy(row, cats[start:end])
		rows = append(rows, row)
	}
	return rows, nil
}
