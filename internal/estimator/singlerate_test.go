package estimator

import (
	"math"
	"testing"

	"evapcook/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestSingleRateEndToEnd(t *testing.T) {
	// Boiling, 100 degC, 10 min, 500 ml, default constants:
	// fraction rule 0.40*10 = 4.0 beats volume rule 7.5*0.5 = 3.75, so
	// t_heat = 4.0, t_evap = 6.0, percent = 0.02*1.0*1.0*6.0 = 1.2.
	s := NewSingleRate(DefaultSingleRateConfig())

	res, err := s.Estimate(Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  10,
		WaterML:      500,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	if res.HeatingTimeMin != 4.0 {
		t.Errorf("HeatingTimeMin = %v, want 4.0", res.HeatingTimeMin)
	}
	if res.EvapTimeMin != 6.0 {
		t.Errorf("EvapTimeMin = %v, want 6.0", res.EvapTimeMin)
	}
	if math.Abs(res.EvapPercent-1.2) > 1e-9 {
		t.Errorf("EvapPercent = %v, want 1.2", res.EvapPercent)
	}
	if math.Abs(res.WaterEvaporatedML-6.0) > 1e-9 {
		t.Errorf("WaterEvaporatedML = %v, want 6.0", res.WaterEvaporatedML)
	}
	if math.Abs(res.WaterRemainingML-494.0) > 1e-9 {
		t.Errorf("WaterRemainingML = %v, want 494.0", res.WaterRemainingML)
	}
}

func TestSingleRateVolumeRuleDominates(t *testing.T) {
	// 2 liters of water: volume rule 7.5*2 = 15 beats fraction rule 0.40*20 = 8.
	s := NewSingleRate(DefaultSingleRateConfig())

	res, err := s.Estimate(Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  20,
		WaterML:      2000,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if res.HeatingTimeMin != 15.0 {
		t.Errorf("HeatingTimeMin = %v, want 15.0", res.HeatingTimeMin)
	}
	if res.EvapTimeMin != 5.0 {
		t.Errorf("EvapTimeMin = %v, want 5.0", res.EvapTimeMin)
	}
}

func TestSingleRateLenientDefaults(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())

	// Unknown method falls back to multiplier 1.0; missing temperature
	// defaults to 100 degC. Both are deliberate policies of this variant.
	res, err := s.Estimate(Input{
		Method:      types.CookingMethod("sous_vide"),
		DurationMin: 10,
		WaterML:     500,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if res.MethodMultiplier != 1.0 {
		t.Errorf("MethodMultiplier = %v, want default 1.0", res.MethodMultiplier)
	}
	if res.TemperatureC != 100 {
		t.Errorf("TemperatureC = %v, want default 100", res.TemperatureC)
	}
}

func TestSingleRateTemperatureFactor(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())

	base, err := s.Estimate(Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  10,
		WaterML:      500,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}

	// Above boiling the factor grows linearly: fT at 105 degC is 6.
	hot, err := s.Estimate(Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(105),
		DurationMin:  10,
		WaterML:      500,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if math.Abs(hot.EvapPercent-base.EvapPercent*6) > 1e-9 {
		t.Errorf("EvapPercent at 105 degC = %v, want %v", hot.EvapPercent, base.EvapPercent*6)
	}

	// At or below boiling the factor is flat at 1.
	cool, err := s.Estimate(Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(80),
		DurationMin:  10,
		WaterML:      500,
	})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if cool.EvapPercent != base.EvapPercent {
		t.Errorf("EvapPercent at 80 degC = %v, want %v", cool.EvapPercent, base.EvapPercent)
	}
}

func TestSingleRateMethodMultipliers(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())

	want := map[types.CookingMethod]float64{
		types.MethodBoiling:         1.0,
		types.MethodSteaming:        0.5,
		types.MethodPressureCooking: 0.3,
		types.MethodSlowCooking:     0.8,
	}
	for method, m := range want {
		res, err := s.Estimate(Input{
			Method:       method,
			TemperatureC: floatPtr(100),
			DurationMin:  10,
			WaterML:      500,
		})
		if err != nil {
			t.Fatalf("Estimate(%s) returned error: %v", method, err)
		}
		if res.MethodMultiplier != m {
			t.Errorf("MethodMultiplier(%s) = %v, want %v", method, res.MethodMultiplier, m)
		}
	}
}

func TestSingleRateInvariants(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())

	inputs := []Input{
		{Method: types.MethodBoiling, TemperatureC: floatPtr(100), DurationMin: 0, WaterML: 500},
		{Method: types.MethodBoiling, TemperatureC: floatPtr(100), DurationMin: 10, WaterML: 0},
		{Method: types.MethodBoiling, TemperatureC: floatPtr(500), DurationMin: 10000, WaterML: 500},
		{Method: types.MethodSteaming, TemperatureC: floatPtr(100), DurationMin: 30, WaterML: 1000},
	}
	for _, in := range inputs {
		res, err := s.Estimate(in)
		if err != nil {
			t.Fatalf("Estimate returned error: %v", err)
		}
		if res.EvapPercent < 0 || res.EvapPercent > 100 {
			t.Errorf("EvapPercent %v out of [0,100]", res.EvapPercent)
		}
		if res.WaterEvaporatedML > res.WaterInitialML {
			t.Errorf("evaporated %v exceeds initial %v", res.WaterEvaporatedML, res.WaterInitialML)
		}
		sum := res.WaterEvaporatedML + res.WaterRemainingML
		if math.Abs(sum-res.WaterInitialML) > 1e-9 {
			t.Errorf("evaporated+remaining = %v, want initial %v", sum, res.WaterInitialML)
		}
	}
}

func TestSingleRateDurationMonotonic(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())

	prev := -1.0
	for d := 1.0; d <= 120; d += 1 {
		res, err := s.Estimate(Input{
			Method:       types.MethodBoiling,
			TemperatureC: floatPtr(100),
			DurationMin:  d,
			WaterML:      500,
		})
		if err != nil {
			t.Fatalf("Estimate returned error: %v", err)
		}
		if res.WaterEvaporatedML < prev {
			t.Fatalf("evaporated decreased at duration %v: %v < %v", d, res.WaterEvaporatedML, prev)
		}
		prev = res.WaterEvaporatedML
	}
}
