package trend

import (
	"github.com/c9s/tacore/pkg/datatype/floats"
	"github.com/c9s/tacore/pkg/ta"
)

// SmoothingFactor returns the default EMA weight 2 / (period + 1).
func SmoothingFactor[T ta.Float](period int) T {
	return 2 / T(period+1)
}

// EMALookback returns period - 1. The period must be at least 2.
func EMALookback(period int) (int, error) {
	return SMALookback(period)
}

// resolveFactor maps k == 0 to the default factor and rejects anything
// outside (0, 1].
func resolveFactor[T ta.Float](period int, k T) (T, error) {
	if k == 0 {
		return SmoothingFactor[T](period), nil
	}

	if ta.IsNaN(k) || k < 0 || k > 1 {
		return 0, ta.Errorf(ta.InvalidParameter, "smoothing factor %v must be in (0, 1]", k)
	}

	return k, nil
}

func emaStep[T ta.Float](input, prevEMA, k T) T {
	return ta.FMA(input-prevEMA, k, prevEMA)
}

// EMA computes the exponential moving average of input into output. Pass
// k = 0 to use the default smoothing factor 2 / (period + 1).
//
// The first value is the SMA of the first window, after that:
//
//	EMA[i] = (input[i] - EMA[i-1]) * k + EMA[i-1]
func EMA[T ta.Float](cfg ta.Config, input []T, period int, k T, output []T) error {
	lookback, err := EMALookback(period)
	if err != nil {
		return err
	}

	k, err = resolveFactor(period, k)
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

	prev := floats.Average(input[:period])
	output[lookback] = prev

	for i := period; i < len(input); i++ {
		prev = emaStep(input[i], prev, k)
		output[i] = prev
	}

	return nil
}

// EMAInc returns the next EMA. Only the previous EMA is carried between calls.
func EMAInc[T ta.Float](cfg ta.Config, input, prevEMA T, period int, k T) (T, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	k, err := resolveFactor(period, k)
	if err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, input, prevEMA); err != nil {
		return 0, err
	}

	return emaStep(input, prevEMA, k), nil
}
