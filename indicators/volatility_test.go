package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/swing/market"
)

func seriesFromCloses(closes []float64) market.Series {
	s := make(market.Series, len(closes))
	for i, c := range closes {
		s[i] = market.Candle{Close: c}
	}
	return s
}

func TestAnnualizedVolatility_TooShort(t *testing.T) {
	t.Parallel()

	closes := make([]float64, MinVolatilitySamples-1)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	_, ok := AnnualizedVolatility(seriesFromCloses(closes))
	assert.False(t, ok)

	_, ok = AnnualizedVolatility(nil)
	assert.False(t, ok)
}

func TestAnnualizedVolatility_FlatSeriesIsZeroNotUnknown(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}

	vol, ok := AnnualizedVolatility(seriesFromCloses(closes))
	assert.True(t, ok)
	assert.Equal(t, 0.0, vol)
}

func TestAnnualizedVolatility_AlternatingReturns(t *testing.T) {
	t.Parallel()

	// 21 closes whose daily returns alternate exactly +10% / -10%:
	// 20 returns with mean 0 and sample variance 20*0.01/19.
	closes := make([]float64, 21)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] * 1.1
		} else {
			closes[i] = closes[i-1] * 0.9
		}
	}

	vol, ok := AnnualizedVolatility(seriesFromCloses(closes))
	assert.True(t, ok)

	want := math.Sqrt(20*0.01/19) * math.Sqrt(252)
	assert.InDelta(t, want, vol, 1e-9)
}

func TestAnnualizedVolatility_DegenerateCloses(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100
	}
	closes[10] = 0 // a zero close makes the next return undefined

	_, ok := AnnualizedVolatility(seriesFromCloses(closes))
	assert.False(t, ok)
}

func TestAnnualizedVolatility_NonNegative(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 40)
	closes[0] = 50
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * (1 + 0.002*float64(i%5-2))
	}

	vol, ok := AnnualizedVolatility(seriesFromCloses(closes))
	assert.True(t, ok)
	assert.GreaterOrEqual(t, vol, 0.0)
}
