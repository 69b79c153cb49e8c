package catalog

import "hobby_catalog/internal/domain"

// Treatments is the rotating placeholder palette for list cards.
var Treatments = []domain.VisualTreatmentID{
	"violet-200",
	"indigo-200",
	"fuchsia-200",
	"rose-200",
	"amber-200",
	"emerald-200",
	"sky-200",
	"lime-200",
	"teal-200",
	"orange-200",
}

// Treatment picks a card treatment from the item's position alone.
// Re-sorting a list changes which establishment gets which treatment.
func Treatment(index int) domain.VisualTreatmentID {
	return Treatments[mod(index, len(Treatments))]
}
