package momentum

import (
	"github.com/c9s/tacore/pkg/ta"
	"github.com/c9s/tacore/pkg/ta/volatility"
)

// DXState holds the Wilder-smoothed +DM, -DM and true range.
type DXState[T ta.Float] struct {
	PlusDM  T
	MinusDM T
	TR      T
}

// DXOutput receives the batch DX. The smoothed state series are optional.
// PlusDM and MinusDM follow their own lookback of period - 1.
type DXOutput[T ta.Float] struct {
	DX      []T
	PlusDM  []T
	MinusDM []T
	TR      []T
}

// State returns the state held at index i. Every state series must be set.
func (o DXOutput[T]) State(i int) DXState[T] {
	return DXState[T]{PlusDM: o.PlusDM[i], MinusDM: o.MinusDM[i], TR: o.TR[i]}
}

// DXLookback returns period: one smoothing step past the DM seed.
func DXLookback(period int) (int, error) {
	lookback, err := DMLookback(period)
	if err != nil {
		return 0, err
	}

	return lookback + 1, nil
}

// value computes the directional movement index from the smoothed sums:
//
//	+DI = 100 * +DM / TR
//	-DI = 100 * -DM / TR
//	DX  = 100 * |+DI - -DI| / (+DI + -DI)
//
// A zero true range or a zero DI sum yields 0.
func (s DXState[T]) value() T {
	if s.TR == 0 {
		return 0
	}

	plusDI := 100 * s.PlusDM / s.TR
	minusDI := 100 * s.MinusDM / s.TR
	sum := plusDI + minusDI
	if sum == 0 {
		return 0
	}

	return 100 * ta.Abs(plusDI-minusDI) / sum
}

func (s DXState[T]) step(tr T, period int) T {
	return wilder(s.TR, tr, period)
}

// DX computes the directional movement index over high, low and close.
func DX[T ta.Float](cfg ta.Config, high, low, close []T, period int, out DXOutput[T]) error {
	lookback, err := DXLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, close, out.DX); err != nil {
		return err
	}

	if err := ta.CheckOptional(cfg, len(high), out.PlusDM, out.MinusDM, out.TR); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low, close); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, out.DX, out.TR)
	if !ta.Ready(len(high), lookback) {
		return nil
	}

	n := len(high)
	plus, minus := out.PlusDM, out.MinusDM
	if plus == nil {
		plus = make([]T, n)
	}
	if minus == nil {
		minus = make([]T, n)
	}

	sub := cfg.WithoutChecks()
	if err := PlusDM(sub, high, low, period, plus); err != nil {
		return err
	}

	if err := MinusDM(sub, high, low, period, minus); err != nil {
		return err
	}

	var s DXState[T]
	for i := 1; i < n; i++ {
		tr, err := volatility.TRangeInc(sub, high[i], low[i], close[i-1])
		if err != nil {
			return err
		}

		if i < period {
			s.TR += tr
			continue
		}

		s = DXState[T]{PlusDM: plus[i], MinusDM: minus[i], TR: s.step(tr, period)}
		out.DX[i] = s.value()
		if out.TR != nil {
			out.TR[i] = s.TR
		}
	}

	return nil
}

// DXInc advances DX by one bar given the previous bar's high, low and close.
func DXInc[T ta.Float](cfg ta.Config, high, low, prevHigh, prevLow, prevClose T, prev DXState[T], period int) (T, DXState[T], error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, prev, err
	}

	if err := ta.CheckNaNValues(cfg, high, low, prevHigh, prevLow, prevClose, prev.PlusDM, prev.MinusDM, prev.TR); err != nil {
		return 0, prev, err
	}

	sub := cfg.WithoutChecks()
	tr, err := volatility.TRangeInc(sub, high, low, prevClose)
	if err != nil {
		return 0, prev, err
	}

	plus, err := PlusDMInc(sub, high, low, prevHigh, prevLow, prev.PlusDM, period)
	if err != nil {
		return 0, prev, err
	}

	minus, err := MinusDMInc(sub, high, low, prevHigh, prevLow, prev.MinusDM, period)
	if err != nil {
		return 0, prev, err
	}

	next := DXState[T]{PlusDM: plus, MinusDM: minus, TR: prev.step(tr, period)}
	return next.value(), next, nil
}
