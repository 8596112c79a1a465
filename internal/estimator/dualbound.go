package estimator

import (
	"math"

	"evapcook/internal/types"
)

// phaseEpsilonC is the tolerance used when deciding whether the cooking
// temperature has reached the method's phase temperature.
const phaseEpsilonC = 0.5

// empiricalRampFloorC is the temperature below which the empirical fraction
// is zero. The ramp runs from here to the phase temperature with a 1.5
// exponent, so sub-boiling evaporation grows super-linearly with temperature.
const empiricalRampFloorC = 70.0

// dualBoundMethodParams holds the per-method empirical pair and the phase
// (boiling) temperature target of the dual-bound model.
type dualBoundMethodParams struct {
	// Fraction is the share of the water mass evaporated over BaseTimeMin
	// at the phase temperature.
	Fraction    float64
	BaseTimeMin float64
	PhaseTempC  float64
}

// dualBoundParams carries one entry per recognized method. Pressure cooking
// boils above 100 degC under pressure; the other methods phase-change at the
// standard boiling point.
var dualBoundParams = map[types.CookingMethod]dualBoundMethodParams{
	types.MethodBoiling:         {Fraction: 0.50, BaseTimeMin: 60, PhaseTempC: 100},
	types.MethodSteaming:        {Fraction: 0.25, BaseTimeMin: 60, PhaseTempC: 100},
	types.MethodPressureCooking: {Fraction: 0.15, BaseTimeMin: 60, PhaseTempC: 110},
	types.MethodSlowCooking:     {Fraction: 0.40, BaseTimeMin: 60, PhaseTempC: 100},
}

// DualBoundConfig holds the physical constants of the energy-balance cap.
type DualBoundConfig struct {
	// SpecificHeatJPerGC is the specific heat of water, J/(g*degC).
	SpecificHeatJPerGC float64
	// LatentHeatJPerG is the latent heat of vaporization of water, J/g.
	LatentHeatJPerG float64
	// InitialTempC is the assumed starting temperature of the added water.
	InitialTempC float64
	// HeaterPowerW is the assumed heater power input.
	HeaterPowerW float64
	// HeaterEfficiency is the share of heater energy reaching the water.
	HeaterEfficiency float64
}

// DefaultDualBoundConfig returns the calibration the model was derived with.
func DefaultDualBoundConfig() DualBoundConfig {
	return DualBoundConfig{
		SpecificHeatJPerGC: 4.186,
		LatentHeatJPerG:    2260,
		InitialTempC:       25,
		HeaterPowerW:       1500,
		HeaterEfficiency:   0.45,
	}
}

// DualBound is the dual-bound (physics cap + empirical fraction) strategy.
// Unlike SingleRate it validates its input strictly: unrecognized methods,
// missing temperature, and non-positive water, duration, power, or
// efficiency are rejected. The two variants' validation policies diverge on
// purpose and must not be unified.
type DualBound struct {
	cfg DualBoundConfig
}

// NewDualBound constructs the strategy with the given physical constants.
func NewDualBound(cfg DualBoundConfig) *DualBound {
	return &DualBound{cfg: cfg}
}

// Name implements Strategy.
func (d *DualBound) Name() types.ModelVariant {
	return types.ModelDualBound
}

// Estimate implements Strategy.
//
// Two independent bounds are computed and merged:
//
//   - Physics cap: total energy input E = P * t * eta, minus the sensible
//     heat needed to raise the water from InitialTempC to the phase
//     temperature; the excess divided by the latent heat is the most mass
//     the energy budget can possibly vaporize. Zero when the temperature is
//     below phase or when E does not exceed the sensible heat.
//   - Empirical bound: the method's base fraction, scaled linearly by
//     duration over BaseTimeMin and by a temperature ramp
//     clamp01((T-70)/(phase-70))^1.5, clamped to [0, 1], times the water mass.
//
// At or above the phase temperature the result is the minimum of the water
// mass and both bounds. Below it, the physics cap is ignored rather than
// forced to zero; otherwise it would always dominate and zero out
// sub-boiling evaporation.
func (d *DualBound) Estimate(in Input) (types.EvaporationResult, error) {
	params, ok := dualBoundParams[in.Method]
	if !ok {
		return types.EvaporationResult{}, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidMethod,
			"unrecognized cooking method",
			nil,
			map[string]any{"method": string(in.Method)},
		)
	}
	if in.TemperatureC == nil {
		return types.EvaporationResult{}, types.NewAppError(
			types.ErrCodeValidationMissingTemperature,
			"cooking temperature is required for the dual-bound model",
			nil,
		)
	}
	if in.WaterML <= 0 {
		return types.EvaporationResult{}, types.NewAppError(
			types.ErrCodeValidationInvalidInput,
			"water quantity must be positive",
			nil,
		)
	}
	if in.DurationMin <= 0 {
		return types.EvaporationResult{}, types.NewAppError(
			types.ErrCodeValidationInvalidDuration,
			"duration must be positive",
			nil,
		)
	}
	if d.cfg.HeaterPowerW <= 0 || d.cfg.HeaterEfficiency <= 0 {
		return types.EvaporationResult{}, types.NewAppError(
			types.ErrCodeValidationInvalidInput,
			"heater power and efficiency must be positive",
			nil,
		)
	}

	temp := *in.TemperatureC
	atOrAbovePhase := temp >= params.PhaseTempC-phaseEpsilonC

	// Physics cap: energy left after sensible heating, converted to mass.
	var physicsCap float64
	if atOrAbovePhase {
		energyIn := d.cfg.HeaterPowerW * (in.DurationMin * 60) * d.cfg.HeaterEfficiency
		sensible := in.WaterML * d.cfg.SpecificHeatJPerGC * math.Max(0, params.PhaseTempC-d.cfg.InitialTempC)
		if energyIn > sensible {
			physicsCap = (energyIn - sensible) / d.cfg.LatentHeatJPerG
		}
	}

	// Empirical bound: temperature-scaled fixed-rate heuristic.
	tf := clamp01((temp - empiricalRampFloorC) / (params.PhaseTempC - empiricalRampFloorC))
	tf = math.Pow(tf, 1.5)
	fractionScaled := clamp01(params.Fraction * (in.DurationMin / params.BaseTimeMin) * tf)
	empiricalBound := in.WaterML * fractionScaled

	var evaporated float64
	if atOrAbovePhase {
		evaporated = math.Min(in.WaterML, math.Min(physicsCap, empiricalBound))
	} else {
		evaporated = math.Min(in.WaterML, empiricalBound)
	}

	return types.EvaporationResult{
		Model:             types.ModelDualBound,
		Method:            in.Method,
		WaterInitialML:    in.WaterML,
		WaterEvaporatedML: evaporated,
		WaterRemainingML:  in.WaterML - evaporated,
		EvapPercent:       evaporated / in.WaterML * 100,
		TotalTimeMin:      in.DurationMin,
		TemperatureC:      temp,
		PhaseTempC:        params.PhaseTempC,
		PhysicsCapML:      physicsCap,
		EmpiricalBoundML:  empiricalBound,
	}, nil
}
