package signal

import (
	"context"
	"strings"
	"time"

	"github.com/rustyeddy/swing/market"
)

// Action is the directional recommendation for an instrument.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
	Hold Action = "HOLD"
)

// Signal is the fixed-shape value the engine consumes. Whatever the
// external provider returns is normalized into this before it reaches any
// decision logic; nothing downstream branches on the raw payload.
type Signal struct {
	Symbol     string
	Action     Action
	Confidence float64 // 0 when the provider gives none
	RiskLabel  string
}

// Provider produces one recommendation per instrument per trading day.
type Provider interface {
	GetSignal(ctx context.Context, symbol string, date time.Time) (Signal, error)
}

// ParseAction maps a raw action label onto a known Action. Anything that is
// not recognizably BUY or SELL becomes HOLD, the fail-safe.
func ParseAction(raw string) Action {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "BUY":
		return Buy
	case "SELL":
		return Sell
	default:
		return Hold
	}
}

// Normalize builds a Signal from an arbitrary provider payload. Agent-style
// providers sometimes return a bare action label, sometimes a structured
// object with extra commentary. Both shapes land here; unknown shapes
// normalize to HOLD.
func Normalize(symbol string, payload any) Signal {
	sig := Signal{
		Symbol: market.NormalizeSymbol(symbol),
		Action: Hold,
	}

	switch v := payload.(type) {
	case string:
		sig.Action = ParseAction(v)
	case map[string]any:
		if raw, ok := v["action"].(string); ok {
			sig.Action = ParseAction(raw)
		}
		if c, ok := v["confidence"].(float64); ok {
			sig.Confidence = c
		}
		if r, ok := v["risk"].(string); ok {
			sig.RiskLabel = r
		}
	}

	return sig
}
