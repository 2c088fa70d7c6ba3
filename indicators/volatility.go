// Package indicators provides the batch technical computations the daily
// pass runs on a price history: annualized volatility and setup
// classification.
package indicators

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rustyeddy/swing/market"
)

// Trading days per year, for annualizing daily return volatility.
const tradingDaysPerYear = 252

// MinVolatilitySamples is the fewest daily bars from which a volatility
// estimate is considered meaningful.
const MinVolatilitySamples = 20

// AnnualizedVolatility estimates volatility from daily simple returns:
// sample standard deviation of returns scaled by sqrt(252). It returns
// ok=false when the series is too short or numerically degenerate; a flat
// series is a valid 0, not unknown.
func AnnualizedVolatility(s market.Series) (vol float64, ok bool) {
	closes := s.Closes()
	if len(closes) < MinVolatilitySamples {
		return 0, false
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev <= 0 {
			return 0, false
		}
		returns = append(returns, (closes[i]-prev)/prev)
	}

	vol = stat.StdDev(returns, nil) * math.Sqrt(tradingDaysPerYear)
	if math.IsNaN(vol) || math.IsInf(vol, 0) {
		return 0, false
	}
	return vol, true
}
