package market

import "time"

// Candle represents one daily OHLC (Open, High, Low, Close) bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
