package volatility

import (
	"github.com/c9s/tacore/pkg/ta"
)

// TRangeLookback returns 1: the true range needs the previous close.
func TRangeLookback() (int, error) {
	return 1, nil
}

func trueRange[T ta.Float](high, low, prevClose T) T {
	return ta.Max(high-low, ta.Max(ta.Abs(high-prevClose), ta.Abs(low-prevClose)))
}

// TRange computes the true range, the largest of
//
//	high - low, |high - prevClose|, |low - prevClose|
func TRange[T ta.Float](cfg ta.Config, high, low, close []T, output []T) error {
	lookback, err := TRangeLookback()
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, close, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low, close); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, output)

	for i := lookback; i < len(high); i++ {
		output[i] = trueRange(high[i], low[i], close[i-1])
	}

	return nil
}

// TRangeInc returns the true range of one bar given the previous close.
func TRangeInc[T ta.Float](cfg ta.Config, high, low, prevClose T) (T, error) {
	if err := ta.CheckNaNValues(cfg, high, low, prevClose); err != nil {
		return 0, err
	}

	return trueRange(high, low, prevClose), nil
}
