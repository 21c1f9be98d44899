// Package finance derives the per-freight financial fields (effective cost,
// result) and the category and period aggregations shown on every monetary
// screen. Everything here is a pure function over the latest snapshot.
package finance

import (
	"strings"

	"github.com/transgraos/fretelog/internal/reconcile"
)

// Category is the closed set of cost categories.
type Category string

const (
	CategoryFuel        Category = "combustivel"
	CategoryMaintenance Category = "manutencao"
	CategoryToll        Category = "pedagio"
	CategoryOther       Category = "outros"
)

// Categories lists the closed set in presentation order.
func Categories() []Category {
	return []Category{CategoryFuel, CategoryMaintenance, CategoryToll, CategoryOther}
}

var categoryMarkers = []struct {
	category Category
	markers  []string
}{
	{CategoryFuel, []string{"combust", "diesel", "abastec"}},
	{CategoryMaintenance, []string{"manutenc", "mecanic"}},
	{CategoryToll, []string{"pedag"}},
}

// Categorize maps free-text category input onto the closed set. Matching is
// by substring containment on the normalized form, so spelling variants like
// "Combustível", "combustivel" and "COMBUSTIVEL (diesel)" land in the same
// bucket. Anything unrecognized becomes CategoryOther, never an error.
func Categorize(raw string) Category {
	normalized := reconcile.Normalize(raw)
	for _, entry := range categoryMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(normalized, marker) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
