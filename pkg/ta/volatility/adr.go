package volatility

import (
	"github.com/c9s/tacore/pkg/datatype/floats"
	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/ta/trend"
)

// ADRLookback is the lookback of the underlying SMA.
func ADRLookback(period int) (int, error) {
	return trend.SMALookback(period)
}

// ADR computes the average daily range, SMA(high - low, period).
func ADR[T ta.Float](cfg ta.Config, high, low []T, period int, output []T) error {
	lookback, err := ADRLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low); err != nil {
		return err
	}

	ranges := make([]T, len(high))
	floats.Subtract(high, low, ranges)

	return trend.SMA(cfg.WithoutChecks(), ranges, period, output)
}

// ADRInc slides the range window by one bar. The old high and low are the
// bar leaving the window, i.e. the one at i-period.
func ADRInc[T ta.Float](cfg ta.Config, newHigh, newLow, oldHigh, oldLow, prevADR T, period int) (T, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, newHigh, newLow, oldHigh, oldLow, prevADR); err != nil {
		return 0, err
	}

	return trend.SMAInc(cfg.WithoutChecks(), newHigh-newLow, oldHigh-oldLow, prevADR, period)
}
