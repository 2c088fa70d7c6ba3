package risk

// Ledger tracks the running open-trade count and aggregate risk committed
// during a single pass. The broker's account view lags just-submitted
// orders, so the engine keeps these counters itself: each accepted decision
// updates them immediately and later instruments in the same pass see the
// effect.
//
// A Ledger is owned by one engine pass and is not safe for concurrent use.
type Ledger struct {
	openTrades int
	riskInUse  float64
}

// NewLedger seeds the counters from the start-of-run snapshot: the count of
// non-zero positions in the managed universe, and the risk those positions
// represent (count * risk-per-trade * equity, since every position was
// sized to the same per-trade budget).
func NewLedger(openTrades int, riskInUse float64) *Ledger {
	if openTrades < 0 {
		openTrades = 0
	}
	if riskInUse < 0 {
		riskInUse = 0
	}
	return &Ledger{openTrades: openTrades, riskInUse: riskInUse}
}

func (l *Ledger) OpenTrades() int { return l.openTrades }
func (l *Ledger) RiskInUse() float64 { return l.riskInUse }

// CanOpen reports whether one more trade fits under both ceilings: the
// open-trade count and the aggregate risk cap, with the prospective trade's
// risk projected in.
func (l *Ledger) CanOpen(b Budget, equity float64) bool {
	if l.openTrades >= b.MaxOpenTrades {
		return false
	}
	return l.riskInUse+b.RiskPerTrade*equity <= b.MaxTotalRisk*equity
}

// RecordOpen commits an accepted entry. Call only after the order was
// accepted for submission.
func (l *Ledger) RecordOpen(riskAmount float64) {
	l.openTrades++
	l.riskInUse += riskAmount
}

// RecordClose commits an accepted exit. The count drops but riskInUse is
// deliberately left alone: the reference policy only ever accumulates risk
// within a pass, which keeps admission conservative when a pass both closes
// and opens positions.
func (l *Ledger) RecordClose() {
	if l.openTrades > 0 {
		l.openTrades--
	}
}
