package store

import (
	"strings"

	"workshop-genie/internal/model"
)

// Matches reports whether w satisfies every criterion set in f.
// Blank category/location select everything; price bounds are inclusive.
func Matches(w model.Workshop, f model.WorkshopFilter) bool {
	if f.Category != "" && !strings.EqualFold(w.Category, f.Category) {
		return false
	}
	if f.Location != "" && !containsFold(w.Location, f.Location) {
		return false
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := w.PriceValue()
		// NaN on either side fails both comparisons
		if f.PriceMin != nil && !(price >= *f.PriceMin) {
			return false
		}
		if f.PriceMax != nil && !(price <= *f.PriceMax) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func filterWorkshops(ws []model.Workshop, keep func(model.Workshop) bool) []model.Workshop {
	out := make([]model.Workshop, 0, len(ws))
	for _, w := range ws {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func searchIn(ws []model.Workshop, f model.WorkshopFilter) []model.Workshop {
	return filterWorkshops(ws, func(w model.Workshop) bool { return Matches(w, f) })
}

// byCategory differs from a category search: an empty category only matches
// workshops whose category is empty.
func byCategory(ws []model.Workshop, category string) []model.Workshop {
	return filterWorkshops(ws, func(w model.Workshop) bool { return strings.EqualFold(w.Category, category) })
}

func byLocation(ws []model.Workshop, location string) []model.Workshop {
	return filterWorkshops(ws, func(w model.Workshop) bool { return containsFold(w.Location, location) })
}
