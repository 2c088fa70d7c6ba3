package risk

import "github.com/rustyeddy/swing/indicators"

// Stop width bases by annualized volatility bucket.
const (
	stopBaseUnknownVol = 0.04
	stopBaseLowVol     = 0.03  // vol < 0.25
	stopBaseMidVol     = 0.045 // 0.25 <= vol < 0.40
	stopBaseHighVol    = 0.06  // vol >= 0.40
)

// Setup multipliers. A breakout takes a tighter stop (and therefore a
// larger size); an unclassified setup takes a wider one.
const (
	stopMultBreakout    = 0.8
	stopMultTrendChange = 1.0
	stopMultOther       = 1.2
)

// StopPct picks the stop-loss distance as a fraction of entry price from
// the volatility bucket and setup label. volKnown=false selects the
// unknown-volatility base. Pure and deterministic.
func StopPct(vol float64, volKnown bool, setup indicators.Setup) float64 {
	base := stopBaseUnknownVol
	if volKnown {
		switch {
		case vol < 0.25:
			base = stopBaseLowVol
		case vol < 0.40:
			base = stopBaseMidVol
		default:
			base = stopBaseHighVol
		}
	}

	switch setup {
	case indicators.SetupBreakout:
		return base * stopMultBreakout
	case indicators.SetupTrendChange:
		return base * stopMultTrendChange
	default:
		return base * stopMultOther
	}
}
