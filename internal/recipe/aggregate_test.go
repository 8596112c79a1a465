package recipe

import (
	"testing"

	"evapcook/internal/types"
)

func TestAggregateWaterML(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []types.Ingredient
		want        float64
	}{
		{
			name: "stock excluded, water included",
			ingredients: []types.Ingredient{
				{Name: "Chicken Stock", Quantity: 300, Unit: "ml"},
				{Name: "Water", Quantity: 500, Unit: "ml"},
			},
			want: 500,
		},
		{
			name: "case insensitive substring match",
			ingredients: []types.Ingredient{
				{Name: "sparkling WATER", Quantity: 1, Unit: "cup"},
			},
			want: 240,
		},
		{
			name: "multiple water entries summed across units",
			ingredients: []types.Ingredient{
				{Name: "water", Quantity: 1, Unit: "l"},
				{Name: "cold water", Quantity: 2, Unit: "cup"},
			},
			want: 1480,
		},
		{
			name: "unknown unit contributes zero",
			ingredients: []types.Ingredient{
				{Name: "water", Quantity: 3, Unit: "splash"},
				{Name: "water", Quantity: 100, Unit: "ml"},
			},
			want: 100,
		},
		{
			name: "no qualifying entries",
			ingredients: []types.Ingredient{
				{Name: "Egg hen", Quantity: 40, Unit: "g"},
				{Name: "Salt", Quantity: 5, Unit: "g"},
			},
			want: 0,
		},
		{
			name:        "empty list",
			ingredients: nil,
			want:        0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AggregateWaterML(tc.ingredients); got != tc.want {
				t.Errorf("AggregateWaterML() = %v, want %v", got, tc.want)
			}
		})
	}
}
