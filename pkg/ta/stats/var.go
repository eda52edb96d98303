package stats

import (
	"github.com/c9s/tacore/pkg/ta"
)

// VarState holds the running sums of a variance window.
type VarState[T ta.Float] struct {
	Sum   T
	SumSq T
}

// VarOutput receives the batch variance. Sum and SumSq are optional.
type VarOutput[T ta.Float] struct {
	Var   []T
	Sum   []T
	SumSq []T
}

// State returns the sums held at index i. Both sum series must be set.
func (o VarOutput[T]) State(i int) VarState[T] {
	return VarState[T]{Sum: o.Sum[i], SumSq: o.SumSq[i]}
}

func (o VarOutput[T]) store(i int, v T, s VarState[T]) {
	o.Var[i] = v
	if o.Sum != nil {
		o.Sum[i] = s.Sum
	}
	if o.SumSq != nil {
		o.SumSq[i] = s.SumSq
	}
}

// VarLookback returns period - 1. The period must be at least 2.
func VarLookback(period int) (int, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	return period - 1, nil
}

func (s VarState[T]) slide(input, old T) VarState[T] {
	return VarState[T]{
		Sum:   s.Sum - old + input,
		SumSq: ta.FMA(input, input, ta.FMA(-old, old, s.SumSq)),
	}
}

// variance is the population variance SumSq/n - (Sum/n)^2.
func (s VarState[T]) variance(period int) T {
	n := T(period)
	mean := s.Sum / n
	return s.SumSq/n - mean*mean
}

// Var computes the rolling population variance of input.
func Var[T ta.Float](cfg ta.Config, input []T, period int, out VarOutput[T]) error {
	lookback, err := VarLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, input, out.Var); err != nil {
		return err
	}

	if err := ta.CheckOptional(cfg, len(input), out.Sum, out.SumSq); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, input); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, out.Var, out.Sum, out.SumSq)
	if !ta.Ready(len(input), lookback) {
		return nil
	}

	var s VarState[T]
	for i := 0; i < period; i++ {
		s.Sum += input[i]
		s.SumSq = ta.FMA(input[i], input[i], s.SumSq)
	}
	out.store(lookback, s.variance(period), s)

	for i := period; i < len(input); i++ {
		s = s.slide(input[i], input[i-period])
		out.store(i, s.variance(period), s)
	}

	return nil
}

// VarInc slides the window by one sample. prevInput is the sample leaving
// the window.
func VarInc[T ta.Float](cfg ta.Config, input, prevInput T, prev VarState[T], period int) (T, VarState[T], error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, prev, err
	}

	if err := ta.CheckNaNValues(cfg, input, prevInput, prev.Sum, prev.SumSq); err != nil {
		return 0, prev, err
	}

	next := prev.slide(input, prevInput)
	return next.variance(period), next, nil
}
