package trend

import (
	"math"
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/testing/testhelper"
)

func TestWMA(t *testing.T) {
	output := WMAOutput[float64]{WMA: make([]float64, 4)}
	require.NoError(t, WMA(ta.DefaultConfig, []float64{1, 2, 3, 4}, 3, output))

	testhelper.AssertAllNaN(t, output.WMA[:2])
	// (1*1 + 2*2 + 3*3) / 6, (2*1 + 3*2 + 4*3) / 6
	assert.InDelta(t, 14.0/6.0, output.WMA[2], 1e-12)
	assert.InDelta(t, 20.0/6.0, output.WMA[3], 1e-12)
}

func TestWMA_Golden(t *testing.T) {
	fixture := testhelper.LoadFixture(t)
	input := fixture.KLines.Close

	output := WMAOutput[float64]{WMA: make([]float64, len(input))}
	require.NoError(t, WMA(ta.DefaultConfig, input, 30, output))

	testhelper.AssertAllNaN(t, output.WMA[:29])
	testhelper.AssertSeriesInDelta(t, fixture.GoldenSeries(t, "wma_30"), output.WMA, 1e-4, 29)
}

func TestWMA_TALib(t *testing.T) {
	input := testhelper.RandomKLines(300, 6).Close

	for _, period := range []int{2, 10, 30} {
		output := WMAOutput[float64]{WMA: make([]float64, len(input))}
		require.NoError(t, WMA(ta.DefaultConfig, input, period, output))

		expected := talib.Wma(input, period)
		for i := period - 1; i < len(input); i++ {
			testhelper.AssertRelative(t, expected[i], output.WMA[i], 1e-9, "period %d index %d", period, i)
		}
	}
}

func TestWMA_WindowRescan(t *testing.T) {
	input := testhelper.RandomKLines(120, 7).Close
	const period = 20

	output := WMAOutput[float64]{WMA: make([]float64, len(input))}
	require.NoError(t, WMA(ta.DefaultConfig, input, period, output))

	weights := make([]float64, period)
	for j := range weights {
		weights[j] = float64(j + 1)
	}
	denominator := floats.Sum(weights)

	for i := period - 1; i < len(input); i++ {
		want := floats.Dot(weights, input[i-period+1:i+1]) / denominator
		testhelper.AssertRelative(t, want, output.WMA[i], 1e-9, "index %d", i)
	}
}

func TestWMAInc(t *testing.T) {
	input := testhelper.RandomKLines(200, 8).Close
	const period = 30
	n := len(input)

	output := WMAOutput[float64]{
		WMA:         make([]float64, n),
		WeightedSum: make([]float64, n),
		Sum:         make([]float64, n),
	}
	require.NoError(t, WMA(ta.DefaultConfig, input, period, output))
	testhelper.AssertAllNaN(t, output.Sum[:period-1])

	state := output.State(period - 1)
	for i := period; i < n; i++ {
		got, next, err := WMAInc(ta.DefaultConfig, input[i], input[i-period], state, period)
		require.NoError(t, err)
		testhelper.AssertRelative(t, output.WMA[i], got, testhelper.DefaultEpsilon, "index %d", i)
		testhelper.AssertRelative(t, output.Sum[i], next.Sum, testhelper.DefaultEpsilon, "sum at %d", i)
		state = next
	}
}

func TestWMA_Validation(t *testing.T) {
	input := []float64{1, 2, 3, 4}

	err := WMA(ta.DefaultConfig, input, 1, WMAOutput[float64]{WMA: make([]float64, 4)})
	assert.Equal(t, ta.InvalidParameter, ta.KindOf(err))

	err = WMA(ta.DefaultConfig, input, 3, WMAOutput[float64]{WMA: make([]float64, 4), Sum: make([]float64, 3)})
	assert.Equal(t, ta.LengthMismatch, ta.KindOf(err))

	err = WMA(ta.DefaultConfig, []float64{1, math.NaN(), 3, 4}, 3, WMAOutput[float64]{WMA: make([]float64, 4)})
	assert.Equal(t, ta.NaNDetected, ta.KindOf(err))

	_, _, err = WMAInc(ta.DefaultConfig, 1, 2, WMAState[float64]{WeightedSum: math.NaN()}, 3)
	assert.Equal(t, ta.NaNDetected, ta.KindOf(err))
}

func BenchmarkWMA(b *testing.B) {
	input := testhelper.RandomKLines(10000, 1).Close
	output := WMAOutput[float64]{WMA: make([]float64, len(input))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WMA(ta.TrustedConfig, input, 30, output)
	}
}
