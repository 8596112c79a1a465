// Package estimator implements the water-evaporation estimation kernel.
//
// Two interchangeable strategies exist, representing two design iterations
// of the same problem rather than cooperating components:
//
//   - SingleRate derives an implicit empirical evaporation percentage from a
//     single rate constant, a method multiplier, a temperature multiplier,
//     and an estimated time-to-boil subtracted from the total time.
//   - DualBound computes two independent bounds -- an energy-balance physics
//     cap and a temperature-scaled empirical fraction -- and merges them by a
//     method-dependent rule.
//
// Both are stateless and pure: each Estimate call is a function of its input
// and the fixed constants the strategy was constructed with, so a strategy
// value is safe for concurrent use.
package estimator

import "evapcook/internal/types"

// Input is the normalized recipe input to a strategy. The presentation shell
// produces it from free-text fields via the recipe package; library callers
// may construct it directly.
type Input struct {
	Method types.CookingMethod
	// TemperatureC is nil when the recipe carried no parseable temperature.
	// SingleRate substitutes the boiling point; DualBound rejects absence.
	TemperatureC *float64
	DurationMin  float64
	WaterML      float64
}

// Strategy is the estimation contract shared by both model variants.
type Strategy interface {
	// Name identifies the variant for result records and model selection.
	Name() types.ModelVariant

	// Estimate computes the evaporation result for one recipe input.
	// The returned record always satisfies evaporated + remaining == initial,
	// all quantities >= 0, percent in [0, 100], and evaporated <= initial.
	Estimate(in Input) (types.EvaporationResult, error)
}

// MethodInfo describes the fixed parameters carried for one cooking method,
// exposed by the listing endpoint for explainability.
type MethodInfo struct {
	Method       types.CookingMethod `json:"method"`
	Multiplier   float64             `json:"multiplier"`
	PhaseTempC   float64             `json:"phase_temp_c"`
	BaseFraction float64             `json:"base_fraction"`
	BaseTimeMin  float64             `json:"base_time_min"`
}

// Methods returns the per-method parameters of both variants, in the stable
// order of types.KnownMethods.
func Methods() []MethodInfo {
	out := make([]MethodInfo, 0, len(types.KnownMethods))
	for _, m := range types.KnownMethods {
		p := dualBoundParams[m]
		out = append(out, MethodInfo{
			Method:       m,
			Multiplier:   methodMultipliers[m],
			PhaseTempC:   p.PhaseTempC,
			BaseFraction: p.Fraction,
			BaseTimeMin:  p.BaseTimeMin,
		})
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
