package recipe

import (
	"strings"

	"evapcook/internal/types"
)

// AggregateWaterML sums the milliliter-equivalent quantity of every
// ingredient whose name contains the substring "water", case-insensitively.
//
// Matching is lexical, not semantic: "Chicken Stock" is excluded even though
// it is mostly water, while "sparkling water" is included. Returns 0 when no
// entry qualifies; that is a valid, non-error result.
func AggregateWaterML(ingredients []types.Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		if !strings.Contains(strings.ToLower(ing.Name), "water") {
			continue
		}
		total += WaterMLFromItem(ing.Quantity, ing.Unit)
	}
	return total
}
