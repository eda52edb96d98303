package stats

import (
	"github.com/c9s/tacore/pkg/ta"
)

// CorrelState holds the running sums of a correlation window.
type CorrelState[T ta.Float] struct {
	Sum0   T
	Sum1   T
	Sum0Sq T
	Sum1Sq T
	Sum01  T
}

// CorrelOutput receives the batch correlation. The running sums are optional.
type CorrelOutput[T ta.Float] struct {
	Correl []T
	Sum0   []T
	Sum1   []T
	Sum0Sq []T
	Sum1Sq []T
	Sum01  []T
}

// State returns the sums held at index i. Every sum series must be set.
func (o CorrelOutput[T]) State(i int) CorrelState[T] {
	return CorrelState[T]{
		Sum0:   o.Sum0[i],
		Sum1:   o.Sum1[i],
		Sum0Sq: o.Sum0Sq[i],
		Sum1Sq: o.Sum1Sq[i],
		Sum01:  o.Sum01[i],
	}
}

func (o CorrelOutput[T]) sums() [][]T {
	return [][]T{o.Sum0, o.Sum1, o.Sum0Sq, o.Sum1Sq, o.Sum01}
}

func (o CorrelOutput[T]) store(i int, correl T, s CorrelState[T]) {
	o.Correl[i] = correl
	if o.Sum0 != nil {
		o.Sum0[i] = s.Sum0
	}
	if o.Sum1 != nil {
		o.Sum1[i] = s.Sum1
	}
	if o.Sum0Sq != nil {
		o.Sum0Sq[i] = s.Sum0Sq
	}
	if o.Sum1Sq != nil {
		o.Sum1Sq[i] = s.Sum1Sq
	}
	if o.Sum01 != nil {
		o.Sum01[i] = s.Sum01
	}
}

// CorrelLookback returns period - 1. The period must be at least 2.
func CorrelLookback(period int) (int, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	return period - 1, nil
}

func (s CorrelState[T]) add(x0, x1 T) CorrelState[T] {
	return CorrelState[T]{
		Sum0:   s.Sum0 + x0,
		Sum1:   s.Sum1 + x1,
		Sum0Sq: ta.FMA(x0, x0, s.Sum0Sq),
		Sum1Sq: ta.FMA(x1, x1, s.Sum1Sq),
		Sum01:  ta.FMA(x0, x1, s.Sum01),
	}
}

func (s CorrelState[T]) slide(new0, new1, old0, old1 T) CorrelState[T] {
	return CorrelState[T]{
		Sum0:   s.Sum0 - old0 + new0,
		Sum1:   s.Sum1 - old1 + new1,
		Sum0Sq: ta.FMA(new0, new0, ta.FMA(-old0, old0, s.Sum0Sq)),
		Sum1Sq: ta.FMA(new1, new1, ta.FMA(-old1, old1, s.Sum1Sq)),
		Sum01:  ta.FMA(new0, new1, ta.FMA(-old0, old1, s.Sum01)),
	}
}

// pearson evaluates
//
//	(n*Sxy - Sx*Sy) / sqrt((n*Sxx - Sx^2) * (n*Syy - Sy^2))
//
// and returns NaN when the denominator is not positive, e.g. for a constant
// window.
func (s CorrelState[T]) pearson(period int) T {
	n := T(period)
	numerator := ta.FMA(n, s.Sum01, -(s.Sum0 * s.Sum1))
	d0 := ta.FMA(n, s.Sum0Sq, -(s.Sum0 * s.Sum0))
	d1 := ta.FMA(n, s.Sum1Sq, -(s.Sum1 * s.Sum1))

	denominator := ta.Sqrt(d0 * d1)
	if !(denominator > 0) {
		return ta.NaN[T]()
	}

	return numerator / denominator
}

// Correl computes the rolling Pearson correlation of input0 and input1.
func Correl[T ta.Float](cfg ta.Config, input0, input1 []T, period int, out CorrelOutput[T]) error {
	lookback, err := CorrelLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, input0, input1, out.Correl); err != nil {
		return err
	}

	if err := ta.CheckOptional(cfg, len(input0), out.sums()...); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, input0, input1); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, append(out.sums(), out.Correl)...)
	if !ta.Ready(len(input0), lookback) {
		return nil
	}

	var s CorrelState[T]
	for i := 0; i < period; i++ {
		s = s.add(input0[i], input1[i])
	}
	out.store(lookback, s.pearson(period), s)

	for i := period; i < len(input0); i++ {
		s = s.slide(input0[i], input1[i], input0[i-period], input1[i-period])
		out.store(i, s.pearson(period), s)
	}

	return nil
}

// CorrelInc slides the window by one pair. old0 and old1 are the pair
// leaving the window.
func CorrelInc[T ta.Float](cfg ta.Config, new0, new1, old0, old1 T, prev CorrelState[T], period int) (T, CorrelState[T], error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, prev, err
	}

	if err := ta.CheckNaNValues(cfg, new0, new1, old0, old1,
		prev.Sum0, prev.Sum1, prev.Sum0Sq, prev.Sum1Sq, prev.Sum01); err != nil {
		return 0, prev, err
	}

	next := prev.slide(new0, new1, old0, old1)
	return next.pearson(period), next, nil
}
