// Package catalog holds the pure view-model logic of the establishment
// browser: catalog generation, list capping, card treatments, star rows,
// detail hydration and the category grid. Nothing here performs I/O.
package catalog

import (
	"context"
	"fmt"
	"math"

	"hobby_catalog/internal/domain"
)

var (
	nameTable = []string{
		"Level Barber Shop",
		"Glow Studio",
		"Zen Spa",
		"Pulse Gym",
		"Art & Craft Lab",
		"Rhythm Dance",
		"Cook & Learn",
		"Aqua Swim",
		"Climb High",
		"Code Camp",
	}
	areaTable     = []string{"Seef", "Manama", "Riffa", "Saar", "Muharraq"}
	categoryTable = []string{"Barber", "Salon", "Spa", "Fitness", "Hobby"}
)

// Generate returns count synthetic records starting at position offset.
// Output depends only on (count, offset).
func Generate(count, offset int) []domain.EstablishmentRecord {
	if count <= 0 {
		return []domain.EstablishmentRecord{}
	}
	out := make([]domain.EstablishmentRecord, count)
	for i := range out {
		out[i] = record(offset + i)
	}
	return out
}

func record(n int) domain.EstablishmentRecord {
	return domain.EstablishmentRecord{
		ID:       fmt.Sprintf("est-%d", n),
		Name:     fmt.Sprintf("%s %d", nameTable[mod(n, len(nameTable))], floorDiv(n, len(nameTable))+1),
		Area:     areaTable[mod(n, len(areaTable))],
		Category: categoryTable[mod(n, len(categoryTable))],
		Rating:   float64(40+mod(n, 10)) / 10,
	}
}

// mod is always in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(n, m int) int {
	return int(math.Floor(float64(n) / float64(m)))
}

// ListSpec names a ranked list and the generator window that fills it.
type ListSpec struct {
	Slug   string
	Title  string
	Count  int
	Offset int
}

// HomeSpecs are the three home carousels. Offsets are 20 apart and every
// count stays below 20, so id ranges never overlap.
var HomeSpecs = []ListSpec{
	{Slug: "recommended", Title: "Recommended", Count: 18, Offset: 0},
	{Slug: "new-to-hobby", Title: "New to Hobby", Count: 17, Offset: 20},
	{Slug: "trending", Title: "Trending", Count: 19, Offset: 40},
}

// SpecBySlug looks up one of the home lists.
func SpecBySlug(slug string) (ListSpec, bool) {
	for _, s := range HomeSpecs {
		if s.Slug == slug {
			return s, true
		}
	}
	return ListSpec{}, false
}

// HomeLists generates and caps the three home lists.
func HomeLists() []domain.NamedCatalogList {
	out := make([]domain.NamedCatalogList, 0, len(HomeSpecs))
	for _, s := range HomeSpecs {
		out = append(out, Cap(domain.NamedCatalogList{
			Slug:  s.Slug,
			Title: s.Title,
			Items: Generate(s.Count, s.Offset),
		}, MaxListItems))
	}
	return out
}

// Generator adapts Generate to domain.CatalogSource.
type Generator struct{}

// List returns count generated records starting at rank offset. It never fails.
func (Generator) List(_ context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
	return Generate(count, offset), nil
}
