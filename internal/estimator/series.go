package estimator

import "evapcook/internal/types"

// defaultSeriesStepMin is the sampling interval used when the caller does not
// specify one.
const defaultSeriesStepMin = 1.0

// Series sweeps the estimate over durations from 0 to in.DurationMin in
// stepMin increments, producing the evaporated-mass-over-time points the
// charting endpoint renders. The zero-duration point is always {0, 0} without
// invoking the strategy (no time, no evaporation; DualBound would reject a
// zero duration), and the final point always lands exactly on in.DurationMin.
func Series(s Strategy, in Input, stepMin float64) ([]types.SeriesPoint, error) {
	if stepMin <= 0 {
		stepMin = defaultSeriesStepMin
	}

	points := []types.SeriesPoint{{MinuteMin: 0, EvaporatedML: 0}}
	if in.DurationMin <= 0 {
		return points, nil
	}

	for t := stepMin; ; t += stepMin {
		if t > in.DurationMin {
			t = in.DurationMin
		}
		sample := in
		sample.DurationMin = t
		res, err := s.Estimate(sample)
		if err != nil {
			return nil, err
		}
		points = append(points, types.SeriesPoint{
			MinuteMin:    t,
			EvaporatedML: res.WaterEvaporatedML,
		})
		if t >= in.DurationMin {
			return points, nil
		}
	}
}
