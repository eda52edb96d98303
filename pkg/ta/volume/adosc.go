package volume

import (
	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/ta/trend"
)

// ADOSCState is the state carried between ADOSCInc calls.
type ADOSCState[T ta.Float] struct {
	AD      T
	FastEMA T
	SlowEMA T
}

// ADOSCOutput receives the batch oscillator together with the A/D line and
// both EMAs. Every series is required since the EMAs are computed from the
// A/D line in place.
type ADOSCOutput[T ta.Float] struct {
	ADOSC   []T
	AD      []T
	FastEMA []T
	SlowEMA []T
}

// State returns the state held at index i.
func (o ADOSCOutput[T]) State(i int) ADOSCState[T] {
	return ADOSCState[T]{AD: o.AD[i], FastEMA: o.FastEMA[i], SlowEMA: o.SlowEMA[i]}
}

// ADOSCLookback validates 2 <= fast < slow and returns the lookback of the
// slow EMA.
func ADOSCLookback(fast, slow int) (int, error) {
	if err := ta.CheckFastSlow(fast, slow); err != nil {
		return 0, err
	}

	return trend.EMALookback(slow)
}

// ADOSC computes the Chaikin A/D oscillator, EMA(AD, fast) - EMA(AD, slow).
//
// The A/D line and the two EMAs follow the fill policy at their own
// lookbacks, so AD is valid from 0 and FastEMA from fast - 1. ADOSC itself
// is valid from slow - 1.
func ADOSC[T ta.Float](cfg ta.Config, high, low, close, volume []T, fast, slow int, out ADOSCOutput[T]) error {
	lookback, err := ADOSCLookback(fast, slow)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, close, volume, out.ADOSC, out.AD, out.FastEMA, out.SlowEMA); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low, close, volume); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, out.ADOSC)
	if !ta.Ready(len(high), lookback) {
		return nil
	}

	sub := cfg.WithoutChecks()
	if err := AD(sub, high, low, close, volume, out.AD); err != nil {
		return err
	}

	if err := trend.EMA(sub, out.AD, fast, 0, out.FastEMA); err != nil {
		return err
	}

	if err := trend.EMA(sub, out.AD, slow, 0, out.SlowEMA); err != nil {
		return err
	}

	for i := lookback; i < len(high); i++ {
		out.ADOSC[i] = out.FastEMA[i] - out.SlowEMA[i]
	}

	return nil
}

// ADOSCInc advances the oscillator by one bar.
func ADOSCInc[T ta.Float](cfg ta.Config, high, low, close, volume T, prev ADOSCState[T], fast, slow int) (T, ADOSCState[T], error) {
	if _, err := ADOSCLookback(fast, slow); err != nil {
		return 0, prev, err
	}

	if err := ta.CheckNaNValues(cfg, high, low, close, volume, prev.AD, prev.FastEMA, prev.SlowEMA); err != nil {
		return 0, prev, err
	}

	sub := cfg.WithoutChecks()
	ad, err := ADInc(sub, high, low, close, volume, prev.AD)
	if err != nil {
		return 0, prev, err
	}

	fastEMA, err := trend.EMAInc(sub, ad, prev.FastEMA, fast, 0)
	if err != nil {
		return 0, prev, err
	}

	slowEMA, err := trend.EMAInc(sub, ad, prev.SlowEMA, slow, 0)
	if err != nil {
		return 0, prev, err
	}

	return fastEMA - slowEMA, ADOSCState[T]{AD: ad, FastEMA: fastEMA, SlowEMA: slowEMA}, nil
}
