package estimator

import (
	"math"
	"testing"

	"evapcook/internal/types"
)

func TestSeriesStartsAtZeroAndEndsAtDuration(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())
	in := Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  10,
		WaterML:      500,
	}

	points, err := Series(s, in, 1)
	if err != nil {
		t.Fatalf("Series returned error: %v", err)
	}
	if len(points) != 11 {
		t.Fatalf("len(points) = %d, want 11", len(points))
	}
	if points[0].MinuteMin != 0 || points[0].EvaporatedML != 0 {
		t.Errorf("first point = %+v, want {0 0}", points[0])
	}
	last := points[len(points)-1]
	if last.MinuteMin != 10 {
		t.Errorf("last point minute = %v, want 10", last.MinuteMin)
	}

	// The final sample must agree with a direct full-duration estimate.
	full, err := s.Estimate(in)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if math.Abs(last.EvaporatedML-full.WaterEvaporatedML) > 1e-9 {
		t.Errorf("last point evaporated = %v, want %v", last.EvaporatedML, full.WaterEvaporatedML)
	}
}

func TestSeriesFinalPointLandsOnDurationWithUnevenStep(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())
	in := Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  10,
		WaterML:      500,
	}

	points, err := Series(s, in, 3)
	if err != nil {
		t.Fatalf("Series returned error: %v", err)
	}
	wantMinutes := []float64{0, 3, 6, 9, 10}
	if len(points) != len(wantMinutes) {
		t.Fatalf("len(points) = %d, want %d", len(points), len(wantMinutes))
	}
	for i, want := range wantMinutes {
		if points[i].MinuteMin != want {
			t.Errorf("points[%d].MinuteMin = %v, want %v", i, points[i].MinuteMin, want)
		}
	}
}

func TestSeriesMonotonicNonDecreasing(t *testing.T) {
	for _, s := range []Strategy{
		NewSingleRate(DefaultSingleRateConfig()),
		NewDualBound(DefaultDualBoundConfig()),
	} {
		in := Input{
			Method:       types.MethodBoiling,
			TemperatureC: floatPtr(100),
			DurationMin:  90,
			WaterML:      500,
		}
		points, err := Series(s, in, 1)
		if err != nil {
			t.Fatalf("%s: Series returned error: %v", s.Name(), err)
		}
		for i := 1; i < len(points); i++ {
			if points[i].EvaporatedML < points[i-1].EvaporatedML {
				t.Fatalf("%s: evaporated decreased at minute %v: %v < %v",
					s.Name(), points[i].MinuteMin, points[i].EvaporatedML, points[i-1].EvaporatedML)
			}
		}
	}
}

func TestSeriesDualBoundZeroPointSkipsStrategy(t *testing.T) {
	// DualBound rejects a zero duration, so the series must synthesize the
	// origin point rather than ask the strategy for it.
	d := NewDualBound(DefaultDualBoundConfig())
	in := Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  5,
		WaterML:      500,
	}

	points, err := Series(d, in, 1)
	if err != nil {
		t.Fatalf("Series returned error: %v", err)
	}
	if points[0].MinuteMin != 0 || points[0].EvaporatedML != 0 {
		t.Errorf("first point = %+v, want {0 0}", points[0])
	}
}

func TestSeriesZeroDuration(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())
	points, err := Series(s, Input{Method: types.MethodBoiling, DurationMin: 0, WaterML: 500}, 1)
	if err != nil {
		t.Fatalf("Series returned error: %v", err)
	}
	if len(points) != 1 || points[0].MinuteMin != 0 {
		t.Fatalf("points = %+v, want single origin point", points)
	}
}

func TestSeriesDefaultStep(t *testing.T) {
	s := NewSingleRate(DefaultSingleRateConfig())
	in := Input{
		Method:       types.MethodBoiling,
		TemperatureC: floatPtr(100),
		DurationMin:  5,
		WaterML:      500,
	}

	points, err := Series(s, in, 0)
	if err != nil {
		t.Fatalf("Series returned error: %v", err)
	}
	if len(points) != 6 {
		t.Errorf("len(points) = %d, want 6 with the 1-minute default step", len(points))
	}
}

func TestSeriesPropagatesStrategyError(t *testing.T) {
	d := NewDualBound(DefaultDualBoundConfig())
	in := Input{
		Method:      types.CookingMethod("sous_vide"),
		DurationMin: 5,
		WaterML:     500,
	}

	if _, err := Series(d, in, 1); err == nil {
		t.Fatal("Series should propagate the strategy's validation error")
	}
}
