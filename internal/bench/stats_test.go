package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/bench"
)

func TestCalcFloatStats_EmptyInput(t *testing.T) {
	s := bench.CalcFloatStats(nil)
	require.Equal(t, 0, s.N)
}

func TestCalcFloatStats_BestMeanStd(t *testing.T) {
	s := bench.CalcFloatStats([]float64{2, 4, 6})
	require.Equal(t, 2.0, s.Best)
	require.InDelta(t, 4.0, s.Mean, 1e-9)
	require.InDelta(t, 2.0, s.Std, 1e-9) // sample stdev of {2,4,6}
}

func TestCalcFloatStats_SingleValueHasZeroStd(t *testing.T) {
	s := bench.CalcFloatStats([]float64{5})
	require.Equal(t, 0.0, s.Std)
}

func TestCalcFloatStats_MatchesTwoPassVarianceOnALargerSample(t *testing.T) {
	values := []float64{12.5, 7.25, 19.0, 3.75, 8.0, 14.25, 21.5, 6.0}
	s := bench.CalcFloatStats(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}
	wantStd := sqDiff / float64(len(values)-1)

	require.InDelta(t, mean, s.Mean, 1e-9)
	require.InDelta(t, wantStd, s.Std*s.Std, 1e-9)
}
