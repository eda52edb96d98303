package volume

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/ta/trend"
	"github.com/c9s/tacore/pkg/testing/testhelper"
)

func newADOSCOutput(n int) ADOSCOutput[float64] {
	return ADOSCOutput[float64]{
		ADOSC:   make([]float64, n),
		AD:      make([]float64, n),
		FastEMA: make([]float64, n),
		SlowEMA: make([]float64, n),
	}
}

func TestADOSCLookback(t *testing.T) {
	for _, slow := range []int{3, 10, 26} {
		got, err := ADOSCLookback(2, slow)
		require.NoError(t, err)

		want, err := trend.EMALookback(slow)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, p := range [][2]int{{1, 10}, {10, 10}, {10, 3}} {
		_, err := ADOSCLookback(p[0], p[1])
		assert.Equal(t, ta.InvalidParameter, ta.KindOf(err), "fast %d slow %d", p[0], p[1])
	}
}

func TestADOSC_Golden(t *testing.T) {
	fixture := testhelper.LoadFixture(t)
	k := fixture.KLines
	expected := fixture.GoldenSeries(t, "adosc_3_10")

	out := newADOSCOutput(k.Len())
	require.NoError(t, ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, 3, 10, out))

	testhelper.AssertAllNaN(t, out.ADOSC[:9])
	testhelper.AssertAllNaN(t, out.FastEMA[:2])
	assert.False(t, math.IsNaN(out.FastEMA[2]))
	testhelper.AssertSeriesInDelta(t, expected[9:], out.ADOSC, 1e-6, 9)
}

func TestADOSC_Composition(t *testing.T) {
	k := testhelper.RandomKLines(150, 12)
	n := k.Len()

	out := newADOSCOutput(n)
	require.NoError(t, ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, 5, 20, out))

	ad := make([]float64, n)
	require.NoError(t, AD(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, ad))
	fast := make([]float64, n)
	require.NoError(t, trend.EMA(ta.DefaultConfig, ad, 5, 0, fast))
	slow := make([]float64, n)
	require.NoError(t, trend.EMA(ta.DefaultConfig, ad, 20, 0, slow))

	for i := 19; i < n; i++ {
		assert.Equal(t, fast[i]-slow[i], out.ADOSC[i], "index %d", i)
	}
}

func TestADOSCInc(t *testing.T) {
	k := testhelper.LoadFixture(t).KLines
	const fast, slow = 3, 10

	out := newADOSCOutput(k.Len())
	require.NoError(t, ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, fast, slow, out))

	state := out.State(slow - 1)
	for i := slow; i < k.Len(); i++ {
		got, next, err := ADOSCInc(ta.DefaultConfig, k.High[i], k.Low[i], k.Close[i], k.Volume[i], state, fast, slow)
		require.NoError(t, err)

		// ADOSC is a difference of two close values, compare absolutely
		assert.InDelta(t, out.ADOSC[i], got, 1e-6, "index %d", i)
		testhelper.AssertRelative(t, out.AD[i], next.AD, testhelper.DefaultEpsilon, "ad at %d", i)
		testhelper.AssertRelative(t, out.SlowEMA[i], next.SlowEMA, testhelper.DefaultEpsilon, "slow ema at %d", i)
		state = next
	}
}

func TestADOSC_Validation(t *testing.T) {
	k := testhelper.RandomKLines(20, 13)

	out := newADOSCOutput(20)
	out.SlowEMA = make([]float64, 19)
	err := ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, 3, 10, out)
	assert.Equal(t, ta.LengthMismatch, ta.KindOf(err))

	out = newADOSCOutput(20)
	err = ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, 10, 3, out)
	assert.Equal(t, ta.InvalidParameter, ta.KindOf(err))

	short := testhelper.RandomKLines(9, 13)
	out = newADOSCOutput(9)
	err = ADOSC(ta.DefaultConfig, short.High, short.Low, short.Close, short.Volume, 3, 10, out)
	assert.Equal(t, ta.InsufficientData, ta.KindOf(err))

	_, _, err = ADOSCInc(ta.DefaultConfig, 1.0, 1.0, 1.0, 1.0, ADOSCState[float64]{SlowEMA: math.NaN()}, 3, 10)
	assert.Equal(t, ta.NaNDetected, ta.KindOf(err))
}

func TestADOSC_Float32(t *testing.T) {
	k := testhelper.RandomKLines(100, 14)
	n := k.Len()

	want := newADOSCOutput(n)
	require.NoError(t, ADOSC(ta.DefaultConfig, k.High, k.Low, k.Close, k.Volume, 3, 10, want))

	got := ADOSCOutput[float32]{
		ADOSC:   make([]float32, n),
		AD:      make([]float32, n),
		FastEMA: make([]float32, n),
		SlowEMA: make([]float32, n),
	}
	err := ADOSC(ta.DefaultConfig,
		testhelper.ToFloat32(k.High), testhelper.ToFloat32(k.Low),
		testhelper.ToFloat32(k.Close), testhelper.ToFloat32(k.Volume), 3, 10, got)
	require.NoError(t, err)

	for i := 9; i < n; i++ {
		// prices near 100 leave float32 a few digits for the money flow multiplier
		assert.InDelta(t, want.AD[i], float64(got.AD[i]), 1.0, "ad at %d", i)
		assert.InDelta(t, want.ADOSC[i], float64(got.ADOSC[i]), 1.0, "adosc at %d", i)
	}
}

func BenchmarkADOSC(b *testing.B) {
	k := testhelper.RandomKLines(10000, 1)
	out := newADOSCOutput(k.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ADOSC(ta.TrustedConfig, k.High, k.Low, k.Close, k.Volume, 3, 10, out)
	}
}
