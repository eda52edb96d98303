package volume

import (
	"github.com/c9s/tacore/pkg/ta"
)

// ADLookback returns 0: A/D is defined from the first bar.
func ADLookback() (int, error) {
	return 0, nil
}

// moneyFlowMultiplier is ((close - low) - (high - close)) / (high - low),
// or 0 when the bar has no range.
func moneyFlowMultiplier[T ta.Float](high, low, close T) T {
	r := high - low
	if r == 0 {
		return 0
	}

	return ((close - low) - (high - close)) / r
}

// AD computes the Chaikin accumulation/distribution line:
//
//	MFM = ((close - low) - (high - close)) / (high - low)
//	AD  = AD[i-1] + MFM * volume
//
// The line starts from zero, so AD[0] is the first bar's money flow volume.
func AD[T ta.Float](cfg ta.Config, high, low, close, volume []T, output []T) error {
	lookback, err := ADLookback()
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, close, volume, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low, close, volume); err != nil {
		return err
	}

	var ad T
	for i := range high {
		ad = ta.FMA(moneyFlowMultiplier(high[i], low[i], close[i]), volume[i], ad)
		output[i] = ad
	}

	return nil
}

// ADInc returns the next A/D value from the previous one.
func ADInc[T ta.Float](cfg ta.Config, high, low, close, volume, prevAD T) (T, error) {
	if err := ta.CheckNaNValues(cfg, high, low, close, volume, prevAD); err != nil {
		return 0, err
	}

	return ta.FMA(moneyFlowMultiplier(high, low, close), volume, prevAD), nil
}
