package trend

import (
	"github.com/c9s/tacore/pkg/ta"
)

// WMAState is the running state of a weighted moving average window.
type WMAState[T ta.Float] struct {
	// WeightedSum is sum(weight_j * x_j) with the newest sample weighted period.
	WeightedSum T

	// Sum is the plain sum of the window.
	Sum T
}

// WMAOutput receives the batch WMA. WeightedSum and Sum are optional; leave
// them nil when the running state is not needed.
type WMAOutput[T ta.Float] struct {
	WMA         []T
	WeightedSum []T
	Sum         []T
}

// State returns the state held at index i. Both state series must be set.
func (o WMAOutput[T]) State(i int) WMAState[T] {
	return WMAState[T]{WeightedSum: o.WeightedSum[i], Sum: o.Sum[i]}
}

// WMALookback returns period - 1. The period must be at least 2.
func WMALookback(period int) (int, error) {
	return SMALookback(period)
}

func wmaDenominator[T ta.Float](period int) T {
	return T(period*(period+1)) / 2
}

// slide drops old from the window and appends input with the heaviest weight:
//
//	ws'  = ws - sum + period * input
//	sum' = sum - old + input
func (s WMAState[T]) slide(input, old T, period int) WMAState[T] {
	return WMAState[T]{
		WeightedSum: ta.FMA(T(period), input, s.WeightedSum-s.Sum),
		Sum:         s.Sum - old + input,
	}
}

// WMA computes the linearly weighted moving average of input. The weights
// run 1..period from the oldest to the newest sample of each window.
func WMA[T ta.Float](cfg ta.Config, input []T, period int, out WMAOutput[T]) error {
	lookback, err := WMALookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, input, out.WMA); err != nil {
		return err
	}

	if err := ta.CheckOptional(cfg, len(input), out.WeightedSum, out.Sum); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, input); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, out.WMA, out.WeightedSum, out.Sum)
	if !ta.Ready(len(input), lookback) {
		return nil
	}

	var state WMAState[T]
	for j := 0; j < period; j++ {
		state.WeightedSum += T(j+1) * input[j]
		state.Sum += input[j]
	}

	denominator := wmaDenominator[T](period)
	out.store(lookback, state, denominator)

	for i := period; i < len(input); i++ {
		state = state.slide(input[i], input[i-period], period)
		out.store(i, state, denominator)
	}

	return nil
}

func (o WMAOutput[T]) store(i int, s WMAState[T], denominator T) {
	o.WMA[i] = s.WeightedSum / denominator
	if o.WeightedSum != nil {
		o.WeightedSum[i] = s.WeightedSum
	}
	if o.Sum != nil {
		o.Sum[i] = s.Sum
	}
}

// WMAInc advances the window by one sample. prevInput is the sample leaving
// the window, i.e. input[i-period].
func WMAInc[T ta.Float](cfg ta.Config, input, prevInput T, prev WMAState[T], period int) (T, WMAState[T], error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, prev, err
	}

	if err := ta.CheckNaNValues(cfg, input, prevInput, prev.WeightedSum, prev.Sum); err != nil {
		return 0, prev, err
	}

	next := prev.slide(input, prevInput, period)
	return next.WeightedSum / wmaDenominator[T](period), next, nil
}
