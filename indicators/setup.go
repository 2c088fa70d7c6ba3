package indicators

import (
	"github.com/markcheno/go-talib"

	"github.com/rustyeddy/swing/market"
)

// Setup is the categorical technical pattern behind an entry. It drives
// stop width: breakouts get a tighter stop, unclassified setups a wider
// one.
type Setup string

const (
	SetupBreakout    Setup = "breakout"
	SetupTrendChange Setup = "trend_change"
	SetupOther       Setup = "other"
)

const (
	// MinSetupSamples is the fewest bars needed to classify at all.
	MinSetupSamples = 60

	maPeriod       = 50
	breakoutFactor = 1.01
)

// ClassifySetup labels the series. Precedence is fixed: breakout first
// (last close at or above 1.01x the window max, window including the last
// close), then trend change (last close above the 50-day SMA), then other.
// Short series classify as other, never as a failure.
func ClassifySetup(s market.Series) Setup {
	closes := s.Closes()
	if len(closes) < MinSetupSamples {
		return SetupOther
	}

	last := closes[len(closes)-1]

	max := closes[0]
	for _, c := range closes[1:] {
		if c > max {
			max = c
		}
	}
	if last >= max*breakoutFactor {
		return SetupBreakout
	}

	ma := talib.Sma(closes, maPeriod)
	if last > ma[len(ma)-1] {
		return SetupTrendChange
	}

	return SetupOther
}
