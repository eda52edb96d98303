package pattern

import (
	"github.com/c9s/tacore/pkg/ta"
)

// DragonflyDojiLookback returns 0: the pattern is read from a single bar.
func DragonflyDojiLookback(bodyPercent float64) (int, error) {
	if !(bodyPercent > 0 && bodyPercent < 100) {
		return 0, ta.Errorf(ta.InvalidParameter, "body percent %v must be in (0, 100)", bodyPercent)
	}

	return 0, nil
}

// dragonflyDoji reports Bull when the bar has a range, its body is at most
// bodyPercent of the range and so is the upper shadow.
func dragonflyDoji[T ta.Float](open, high, low, close, bodyPercent T) T {
	r := high - low
	if !(r > 0) {
		return Neutral
	}

	limit := r * bodyPercent / 100
	body := ta.Abs(close - open)
	upperShadow := high - ta.Max(open, close)

	if body <= limit && upperShadow <= limit {
		return Bull
	}

	return Neutral
}

// DragonflyDoji scans each bar for the dragonfly doji (CDL_DRAGONFLY_DOJI):
// open, close and high sit together at the top of a long lower shadow. The
// output is Bull (100) on a match and Neutral (0) otherwise, encoded as T so
// signals share the float series of the other indicators.
func DragonflyDoji[T ta.Float](cfg ta.Config, open, high, low, close []T, bodyPercent T, output []T) error {
	lookback, err := DragonflyDojiLookback(float64(bodyPercent))
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, open, high, low, close, output); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, open, high, low, close); err != nil {
		return err
	}

	for i := range open {
		output[i] = dragonflyDoji(open[i], high[i], low[i], close[i], bodyPercent)
	}

	return nil
}

// DragonflyDojiInc evaluates a single bar.
func DragonflyDojiInc[T ta.Float](cfg ta.Config, open, high, low, close, bodyPercent T) (T, error) {
	if _, err := DragonflyDojiLookback(float64(bodyPercent)); err != nil {
		return 0, err
	}

	if err := ta.CheckNaNValues(cfg, open, high, low, close); err != nil {
		return 0, err
	}

	return dragonflyDoji(open, high, low, close, bodyPercent), nil
}
