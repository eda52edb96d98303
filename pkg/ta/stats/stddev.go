package stats

import (
	"github.com/c9s/tacore/pkg/ta"
)

// StdDevOutput receives the batch standard deviation and, optionally, the
// variance sums it was derived from.
type StdDevOutput[T ta.Float] struct {
	StdDev []T
	Sum    []T
	SumSq  []T
}

// State returns the variance state held at index i.
func (o StdDevOutput[T]) State(i int) VarState[T] {
	return VarState[T]{Sum: o.Sum[i], SumSq: o.SumSq[i]}
}

// StdDevLookback is the lookback of the underlying variance.
func StdDevLookback(period int) (int, error) {
	return VarLookback(period)
}

func checkDeviations[T ta.Float](nbDev T) error {
	if !(nbDev > 0) {
		return ta.Errorf(ta.InvalidParameter, "deviation multiplier %v must be > 0", nbDev)
	}

	return nil
}

// deviation turns a variance into nbDev standard deviations. Rounding can
// leave a tiny negative variance on a flat window; it clamps to 0.
func deviation[T ta.Float](variance, nbDev T) T {
	return ta.Sqrt(ta.Max(variance, 0)) * nbDev
}

// StdDev computes sqrt(Var(input, period)) * nbDev.
func StdDev[T ta.Float](cfg ta.Config, input []T, period int, nbDev T, out StdDevOutput[T]) error {
	lookback, err := StdDevLookback(period)
	if err != nil {
		return err
	}

	if err := checkDeviations(nbDev); err != nil {
		return err
	}

	err = Var(cfg, input, period, VarOutput[T]{Var: out.StdDev, Sum: out.Sum, SumSq: out.SumSq})
	if err != nil {
		return err
	}

	for i := lookback; i < len(input); i++ {
		out.StdDev[i] = deviation(out.StdDev[i], nbDev)
	}

	return nil
}

// StdDevInc slides the window by one sample.
func StdDevInc[T ta.Float](cfg ta.Config, input, prevInput T, prev VarState[T], period int, nbDev T) (T, VarState[T], error) {
	if err := checkDeviations(nbDev); err != nil {
		return 0, prev, err
	}

	v, next, err := VarInc(cfg, input, prevInput, prev, period)
	if err != nil {
		return 0, prev, err
	}

	return deviation(v, nbDev), next, nil
}
