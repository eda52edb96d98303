package volatility

import (
	"math"
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/testing/testhelper"
)

func TestTRange(t *testing.T) {
	high := []float64{10, 11, 15, 9}
	low := []float64{8, 9, 12, 7}
	close := []float64{9, 10, 14, 8}

	output := make([]float64, 4)
	require.NoError(t, TRange(ta.DefaultConfig, high, low, close, output))

	assert.True(t, math.IsNaN(output[0]))
	// high - low, gap up |15 - 10|, gap down |7 - 14|
	assert.Equal(t, []float64{2, 5, 7}, output[1:])
}

func TestTRange_TALib(t *testing.T) {
	k := testhelper.RandomKLines(300, 21)

	output := make([]float64, k.Len())
	require.NoError(t, TRange(ta.DefaultConfig, k.High, k.Low, k.Close, output))

	expected := talib.TRange(k.High, k.Low, k.Close)
	for i := 1; i < k.Len(); i++ {
		assert.InDelta(t, expected[i], output[i], 1e-12, "index %d", i)
	}
}

func TestTRangeInc(t *testing.T) {
	k := testhelper.LoadFixture(t).KLines

	output := make([]float64, k.Len())
	require.NoError(t, TRange(ta.DefaultConfig, k.High, k.Low, k.Close, output))

	for i := 1; i < k.Len(); i++ {
		got, err := TRangeInc(ta.DefaultConfig, k.High[i], k.Low[i], k.Close[i-1])
		require.NoError(t, err)
		assert.Equal(t, output[i], got, "index %d", i)
	}
}

func TestTRange_Validation(t *testing.T) {
	err := TRange(ta.DefaultConfig, []float64{1}, []float64{1}, []float64{1}, make([]float64, 1))
	assert.Equal(t, ta.InsufficientData, ta.KindOf(err))

	err = TRange(ta.DefaultConfig, []float64{1, 2}, []float64{1, 2}, []float64{1, 2}, make([]float64, 3))
	assert.Equal(t, ta.LengthMismatch, ta.KindOf(err))

	_, err = TRangeInc(ta.DefaultConfig, 1.0, math.NaN(), 1.0)
	assert.Equal(t, ta.NaNDetected, ta.KindOf(err))
}

func BenchmarkTRange(b *testing.B) {
	k := testhelper.RandomKLines(10000, 1)
	output := make([]float64, k.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TRange(ta.TrustedConfig, k.High, k.Low, k.Close, output)
	}
}
