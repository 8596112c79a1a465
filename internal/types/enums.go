package types

import "strings"

// CookingMethod identifies the cooking technique applied to a recipe.
type CookingMethod string

const (
	MethodBoiling         CookingMethod = "boiling"
	MethodSteaming        CookingMethod = "steaming"
	MethodPressureCooking CookingMethod = "pressure_cooking"
	MethodSlowCooking     CookingMethod = "slow_cooking"
)

// KnownMethods lists every method the estimators carry parameters for,
// in a stable order for listing endpoints.
var KnownMethods = []CookingMethod{
	MethodBoiling,
	MethodSteaming,
	MethodPressureCooking,
	MethodSlowCooking,
}

// NormalizeMethod maps a loosely-formatted method label ("Pressure Cooking",
// "boiling", "SLOW cooking") onto its canonical CookingMethod value. Labels
// that do not match any known method are returned as-is (lowercased, spaces
// collapsed to underscores): the single-rate model treats them leniently with
// a default multiplier while the dual-bound model rejects them, and both need
// the original label preserved for diagnostics.
func NormalizeMethod(raw string) CookingMethod {
	canonical := strings.ToLower(strings.TrimSpace(raw))
	canonical = strings.Join(strings.Fields(canonical), "_")
	return CookingMethod(canonical)
}

// IsKnown reports whether the method is one of the closed enumeration.
func (m CookingMethod) IsKnown() bool {
	switch m {
	case MethodBoiling, MethodSteaming, MethodPressureCooking, MethodSlowCooking:
		return true
	}
	return false
}

// ModelVariant identifies which estimation strategy produced a result.
type ModelVariant string

const (
	// ModelSingleRate is the single empirical-rate model: one rate constant
	// scaled by method and temperature multipliers over the post-heating time.
	ModelSingleRate ModelVariant = "single_rate"
	// ModelDualBound is the physics+empirical model: an energy-balance cap
	// and a temperature-scaled empirical fraction merged by method rule.
	ModelDualBound ModelVariant = "dual_bound"
)
