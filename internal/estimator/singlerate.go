package estimator

import (
	"math"

	"evapcook/internal/types"
)

// defaultBoilingPointC is the temperature substituted when the input carries
// no parseable temperature, and the anchor of the temperature factor.
const defaultBoilingPointC = 100.0

// methodMultipliers scales the base evaporation rate per cooking method.
// Unknown methods fall back to 1.0; leniency here is a deliberate policy of
// this variant, distinct from DualBound's strict rejection.
var methodMultipliers = map[types.CookingMethod]float64{
	types.MethodBoiling:         1.0,
	types.MethodSteaming:        0.5,
	types.MethodPressureCooking: 0.3,
	types.MethodSlowCooking:     0.8,
}

// SingleRateConfig holds the tunable constants of the single-rate model.
type SingleRateConfig struct {
	// BaseRate is the evaporation percentage accrued per effective minute
	// at boiling temperature with the Boiling method (k).
	BaseRate float64
	// HeatingFraction is the share of total time assumed spent reaching
	// boiling when the volume rule does not dominate.
	HeatingFraction float64
	// MinutesPerLiter is the assumed heating time per liter of added water.
	MinutesPerLiter float64
}

// DefaultSingleRateConfig returns the calibration the model was derived with.
func DefaultSingleRateConfig() SingleRateConfig {
	return SingleRateConfig{
		BaseRate:        0.02,
		HeatingFraction: 0.40,
		MinutesPerLiter: 7.5,
	}
}

// SingleRate is the single empirical-rate estimation strategy.
type SingleRate struct {
	cfg SingleRateConfig
}

// NewSingleRate constructs the strategy with the given constants.
func NewSingleRate(cfg SingleRateConfig) *SingleRate {
	return &SingleRate{cfg: cfg}
}

// Name implements Strategy.
func (s *SingleRate) Name() types.ModelVariant {
	return types.ModelSingleRate
}

// Estimate implements Strategy.
//
// The algorithm:
//  1. Resolve the method multiplier m (unknown methods default to 1.0).
//  2. Temperature factor fT = 1 + max(0, T-100): flat at or below boiling,
//     linear above it.
//  3. Heating time t_heat = the larger of HeatingFraction*total and
//     MinutesPerLiter*liters, rounded to one decimal and clamped to
//     [1, total].
//  4. Evaporation time t_evap = total - t_heat, floored at 0.
//  5. Percent = min(100, k * m * fT * t_evap).
//
// This variant never fails: every malformed or out-of-range field has a
// lenient fallback.
func (s *SingleRate) Estimate(in Input) (types.EvaporationResult, error) {
	m, ok := methodMultipliers[in.Method]
	if !ok {
		m = 1.0
	}

	temp := defaultBoilingPointC
	if in.TemperatureC != nil {
		temp = *in.TemperatureC
	}
	fT := 1.0 + math.Max(0, temp-defaultBoilingPointC)

	fractionRule := s.cfg.HeatingFraction * in.DurationMin
	volumeRule := s.cfg.MinutesPerLiter * (in.WaterML / 1000.0)
	tHeat := math.Round(math.Max(fractionRule, volumeRule)*10) / 10
	tHeat = math.Min(in.DurationMin, math.Max(1.0, tHeat))
	tEvap := math.Max(0, in.DurationMin-tHeat)

	percent := math.Min(100, s.cfg.BaseRate*m*fT*tEvap)
	evaporated := in.WaterML * (percent / 100.0)
	remaining := math.Max(0, in.WaterML-evaporated)

	return types.EvaporationResult{
		Model:             types.ModelSingleRate,
		Method:            in.Method,
		WaterInitialML:    in.WaterML,
		WaterEvaporatedML: evaporated,
		WaterRemainingML:  remaining,
		EvapPercent:       percent,
		TotalTimeMin:      in.DurationMin,
		HeatingTimeMin:    tHeat,
		EvapTimeMin:       tEvap,
		TemperatureC:      temp,
		MethodMultiplier:  m,
	}, nil
}
