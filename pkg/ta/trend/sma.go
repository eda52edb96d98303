package trend

import (
	"github.com/c9s/tacore/pkg/datatype/floats"
	"github.com/c9s/tacore/pkg/ta"
)

// SMALookback returns period - 1. The period must be at least 2.
func SMALookback(period int) (int, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	return period - 1, nil
}

// SMA computes the simple moving average of input into output.
//
// The running sum is seeded over the first window and then slid one sample
// at a time:
//
//	sum[i] = sum[i-1] + input[i] - input[i-period]
//	SMA[i] = sum[i] / period
func SMA[T ta.Float](cfg ta.Config, input []T, period int, output []T) error {
	lookback, err := SMALookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, input, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, input); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, output)
	if !ta.Ready(len(input), lookback) {
		return nil
	}

	p := T(period)
	sum := floats.Sum(input[:period])
	output[lookback] = sum / p

	for i := period; i < len(input); i++ {
		sum = sum + input[i] - input[i-period]
		output[i] = sum / p
	}

	return nil
}

// SMAInc returns the next SMA from the previous one, the newest sample and
// the sample leaving the window.
func SMAInc[T ta.Float](cfg ta.Config, input, prevInput, prevSMA T, period int) (T, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, input, prevInput, prevSMA); err != nil {
		return 0, err
	}

	return prevSMA + (input-prevInput)/T(period), nil
}
