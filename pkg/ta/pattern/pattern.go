package pattern

// Candlestick pattern signals.
const (
	Neutral = 0
	Bull    = 100
)
