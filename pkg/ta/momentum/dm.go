package momentum

import (
	"github.com/c9s/tacore/pkg/ta"
)

// directionalMove returns the one-bar +DM and -DM. At most one of them is
// non-zero: the larger of the up move and the down move wins when positive.
func directionalMove[T ta.Float](high, low, prevHigh, prevLow T) (plus, minus T) {
	up := high - prevHigh
	down := prevLow - low

	if up > down && up > 0 {
		plus = up
	}

	if down > up && down > 0 {
		minus = down
	}

	return plus, minus
}

// wilder applies one step of Wilder's smoothing, s - s/period + value.
func wilder[T ta.Float](s, value T, period int) T {
	return s - s/T(period) + value
}

// DMLookback returns period - 1, the lookback of both PLUS_DM and MINUS_DM.
// The period must be at least 2.
func DMLookback(period int) (int, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	return period - 1, nil
}

// PlusDMLookback returns DMLookback(period).
func PlusDMLookback(period int) (int, error) {
	return DMLookback(period)
}

// MinusDMLookback returns DMLookback(period).
func MinusDMLookback(period int) (int, error) {
	return DMLookback(period)
}

func smoothedDM[T ta.Float](cfg ta.Config, high, low []T, period int, plus bool, output []T) error {
	lookback, err := DMLookback(period)
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, high, low, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, high, low); err != nil {
		return err
	}

	ta.FillInvalid(cfg, lookback, output)
	if !ta.Ready(len(high), lookback) {
		return nil
	}

	pick := func(i int) T {
		p, m := directionalMove(high[i], low[i], high[i-1], low[i-1])
		if plus {
			return p
		}
		return m
	}

	var s T
	for i := 1; i < period; i++ {
		s += pick(i)
	}
	output[lookback] = s

	for i := period; i < len(high); i++ {
		s = wilder(s, pick(i), period)
		output[i] = s
	}

	return nil
}

// PlusDM computes the Wilder-smoothed plus directional movement. The first
// value is the sum of the first period-1 one-bar moves, after that
//
//	+DM[i] = +DM[i-1] - +DM[i-1] / period + +DM1[i]
func PlusDM[T ta.Float](cfg ta.Config, high, low []T, period int, output []T) error {
	return smoothedDM(cfg, high, low, period, true, output)
}

// MinusDM is the mirror of PlusDM for downward moves.
func MinusDM[T ta.Float](cfg ta.Config, high, low []T, period int, output []T) error {
	return smoothedDM(cfg, high, low, period, false, output)
}

// PlusDMInc advances the smoothed +DM by one bar.
func PlusDMInc[T ta.Float](cfg ta.Config, high, low, prevHigh, prevLow, prevPlusDM T, period int) (T, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, high, low, prevHigh, prevLow, prevPlusDM); err != nil {
		return 0, err
	}

	p, _ := directionalMove(high, low, prevHigh, prevLow)
	return wilder(prevPlusDM, p, period), nil
}

// MinusDMInc advances the smoothed -DM by one bar.
func MinusDMInc[T ta.Float](cfg ta.Config, high, low, prevHigh, prevLow, prevMinusDM T, period int) (T, error) {
	if err := ta.CheckPeriod("period", period, 2); err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, high, low, prevHigh, prevLow, prevMinusDM); err != nil {
		return 0, err
	}

	_, m := directionalMove(high, low, prevHigh, prevLow)
	return wilder(prevMinusDM, m, period), nil
}
