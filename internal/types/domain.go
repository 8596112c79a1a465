package types

// Ingredient is one entry of a recipe's ingredient list. Quantity and Unit
// are interpreted by the normalizer's milliliter conversion table.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is the normalized input record for one estimation call. It is
// immutable for the duration of the call; the boundary that parses free-text
// fields (duration strings, temperature strings) produces it.
type Recipe struct {
	DishName string        `json:"dish_name,omitempty"`
	Method   CookingMethod `json:"method"`
	// TemperatureC is nil when the input carried no parseable temperature.
	// The single-rate model substitutes 100 degC; the dual-bound model
	// treats absence as a precondition violation.
	TemperatureC *float64     `json:"temperature_c,omitempty"`
	TotalTimeMin float64      `json:"total_time_min"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// EvaporationResult is the output record of one estimation call.
// Invariants: WaterEvaporatedML + WaterRemainingML == WaterInitialML,
// all three are >= 0, and EvapPercent is in [0, 100].
type EvaporationResult struct {
	Model  ModelVariant  `json:"model"`
	Method CookingMethod `json:"method"`

	WaterInitialML    float64 `json:"water_initial_ml"`
	WaterEvaporatedML float64 `json:"water_evaporated_ml"`
	WaterRemainingML  float64 `json:"water_remaining_ml"`
	EvapPercent       float64 `json:"evap_percent"`

	// Diagnostics retained for explainability; not inputs to any further
	// computation.
	TotalTimeMin     float64 `json:"total_time_min"`
	HeatingTimeMin   float64 `json:"heating_time_min,omitempty"`
	EvapTimeMin      float64 `json:"evap_time_min,omitempty"`
	TemperatureC     float64 `json:"temperature_c"`
	PhaseTempC       float64 `json:"phase_temp_c,omitempty"`
	MethodMultiplier float64 `json:"method_multiplier,omitempty"`
	PhysicsCapML     float64 `json:"physics_cap_ml,omitempty"`
	EmpiricalBoundML float64 `json:"empirical_bound_ml,omitempty"`
}

// SeriesPoint is one sample of the evaporation-over-time sweep used by the
// charting endpoint.
type SeriesPoint struct {
	MinuteMin    float64 `json:"minute"`
	EvaporatedML float64 `json:"evaporated_ml"`
}

// ResponseMeta carries non-blocking warnings alongside a successful response,
// e.g. "recipe parsed but no water-named ingredients were found".
type ResponseMeta struct {
	Warnings []string `json:"warnings,omitempty"`
}
