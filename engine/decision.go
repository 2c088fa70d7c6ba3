package engine

import (
	"github.com/rustyeddy/swing/indicators"
	"github.com/rustyeddy/swing/signal"
)

// Kind of a per-instrument decision.
type Kind string

const (
	Open  Kind = "OPEN"
	Close Kind = "CLOSE"
	Skip  Kind = "SKIP"
)

// Reason explains why a decision came out the way it did. Every decision
// carries one; for skips it names the guard that fired.
type Reason string

const (
	ReasonBuySignal  Reason = "buy_signal"
	ReasonSellSignal Reason = "sell_signal"

	ReasonHold              Reason = "hold"
	ReasonNoSignal          Reason = "no_signal"
	ReasonNoPositionToClose Reason = "no_position_to_close"
	ReasonAlreadyOpen       Reason = "already_open"
	ReasonRiskOrCountLimit  Reason = "risk_or_count_limit"
	ReasonMcapUnavailable   Reason = "mcap_unavailable"
	ReasonMarketCapFloor    Reason = "market_cap_floor"
	ReasonNoPrice           Reason = "no_price"
	ReasonSizingZero        Reason = "sizing_zero"
	ReasonOrderFailed       Reason = "order_failed"
)

// Decision is the outcome for one instrument in one pass. Ephemeral: it is
// produced, journaled and reported, never read back.
type Decision struct {
	Symbol   string
	Action   signal.Action
	Kind     Kind
	Quantity int64
	Reason   Reason

	// Sizing context, populated on the entry path.
	Price      float64
	StopPct    float64
	Setup      indicators.Setup
	Volatility float64
	VolKnown   bool
	RiskAmount float64
}
