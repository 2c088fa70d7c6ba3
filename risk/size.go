package risk

import "math"

// SizeInputs carries everything the position sizer needs.
type SizeInputs struct {
	Equity         float64
	RiskPct        float64 // fraction of equity risked on this trade
	Price          float64 // entry price per share
	StopPct        float64 // stop distance as a fraction of price
	MaxExposurePct float64 // cap on position capital as a fraction of equity
}

// SizeResult is the sized position. Quantity 0 means the trade is
// admissible in principle but sizes to nothing; do not trade it.
type SizeResult struct {
	Quantity     int64
	RiskAmount   float64 // equity * RiskPct
	RiskPerShare float64 // price * StopPct
	Capital      float64 // Quantity * Price
	Clamped      bool    // true when the exposure cap reduced the quantity
}

// Size computes the share quantity for a new position: floor of the risk
// budget over the per-share risk, then clamped so the position's capital
// never exceeds the exposure cap. Always floors, never rounds up, so
// neither the risk budget nor the exposure ceiling can be exceeded.
func Size(in SizeInputs) SizeResult {
	res := SizeResult{
		RiskAmount:   in.Equity * in.RiskPct,
		RiskPerShare: in.Price * in.StopPct,
	}

	if in.Price <= 0 || res.RiskPerShare <= 0 {
		return res
	}

	qty := int64(math.Floor(res.RiskAmount / res.RiskPerShare))
	if qty < 0 {
		qty = 0
	}

	capCapital := in.Equity * in.MaxExposurePct
	if float64(qty)*in.Price > capCapital {
		qtyCap := int64(math.Floor(capCapital / in.Price))
		if qtyCap < qty {
			qty = qtyCap
			res.Clamped = true
		}
	}
	if qty < 0 {
		qty = 0
	}

	res.Quantity = qty
	res.Capital = float64(qty) * in.Price
	return res
}
