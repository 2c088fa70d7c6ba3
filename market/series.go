package market

// Series is an ordered run of daily candles, oldest first. An empty series
// means no history is available for the symbol; callers must treat that as
// unknown, never as zero.
type Series []Candle

// Closes returns the close of every candle, in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close
	}
	return closes
}

// Last returns the most recent candle, or false when the series is empty.
func (s Series) Last() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	return s[len(s)-1], true
}
