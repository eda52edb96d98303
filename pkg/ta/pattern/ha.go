package pattern

import (
	"github.com/c9s/tacore/pkg/ta"
)

// HACandle is one Heikin-Ashi candle.
type HACandle[T ta.Float] struct {
	Open  T
	High  T
	Low   T
	Close T
}

// HAState is the previous Heikin-Ashi open and close.
type HAState[T ta.Float] struct {
	Open  T
	Close T
}

func (c HACandle[T]) state() HAState[T] {
	return HAState[T]{Open: c.Open, Close: c.Close}
}

// HAOutput receives the batch Heikin-Ashi candles.
type HAOutput[T ta.Float] struct {
	Open  []T
	High  []T
	Low   []T
	Close []T
}

// State returns the state held at index i.
func (o HAOutput[T]) State(i int) HAState[T] {
	return HAState[T]{Open: o.Open[i], Close: o.Close[i]}
}

func (o HAOutput[T]) store(i int, c HACandle[T]) {
	o.Open[i] = c.Open
	o.High[i] = c.High
	o.Low[i] = c.Low
	o.Close[i] = c.Close
}

// HALookback returns 0: the first candle is seeded from the raw bar. TA-Lib
// style libraries report 1 and leave the first candle undefined.
func HALookback() (int, error) {
	return 0, nil
}

func haClose[T ta.Float](open, high, low, close T) T {
	return (open + high + low + close) / 4
}

func firstCandle[T ta.Float](open, high, low, close T) HACandle[T] {
	return HACandle[T]{
		Open:  (open + close) / 2,
		High:  high,
		Low:   low,
		Close: haClose(open, high, low, close),
	}
}

func nextCandle[T ta.Float](open, high, low, close T, prev HAState[T]) HACandle[T] {
	c := HACandle[T]{
		Open:  (prev.Open + prev.Close) / 2,
		Close: haClose(open, high, low, close),
	}
	c.High = ta.Max(high, ta.Max(c.Open, c.Close))
	c.Low = ta.Min(low, ta.Min(c.Open, c.Close))
	return c
}

// HA transforms raw candles into Heikin-Ashi candles:
//
//	close = (open + high + low + close) / 4
//	open  = (prevOpen + prevClose) / 2
//	high  = max(high, open, close)
//	low   = min(low, open, close)
//
// The first candle opens at (open + close) / 2 and keeps the raw high and low.
func HA[T ta.Float](cfg ta.Config, open, high, low, close []T, out HAOutput[T]) error {
	lookback, err := HALookback()
	if err != nil {
		return err
	}

	if err := ta.CheckSeries(cfg, lookback, open, high, low, close, out.Open, out.High, out.Low, out.Close); err != nil {
		return err
	}

	if err := ta.CheckNaN(cfg, open, high, low, close); err != nil {
		return err
	}

	if len(open) == 0 {
		return nil
	}

	c := firstCandle(open[0], high[0], low[0], close[0])
	out.store(0, c)

	for i := 1; i < len(open); i++ {
		c = nextCandle(open[i], high[i], low[i], close[i], c.state())
		out.store(i, c)
	}

	return nil
}

// HASeed returns the first Heikin-Ashi candle of a stream and its state.
func HASeed[T ta.Float](cfg ta.Config, open, high, low, close T) (HACandle[T], HAState[T], error) {
	if err := ta.CheckNaNValues(cfg, open, high, low, close); err != nil {
		return HACandle[T]{}, HAState[T]{}, err
	}

	c := firstCandle(open, high, low, close)
	return c, c.state(), nil
}

// HAInc returns the next Heikin-Ashi candle from the previous state.
func HAInc[T ta.Float](cfg ta.Config, open, high, low, close T, prev HAState[T]) (HACandle[T], HAState[T], error) {
	if err := ta.CheckNaNValues(cfg, open, high, low, close, prev.Open, prev.Close); err != nil {
		return HACandle[T]{}, prev, err
	}

	c := nextCandle(open, high, low, close, prev)
	return c, c.state(), nil
}
