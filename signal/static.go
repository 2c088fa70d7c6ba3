package signal

import (
	"context"
	"time"

	"github.com/rustyeddy/swing/market"
)

// Static serves a fixed map of symbol -> action label. Used by the CLI when
// the day's recommendations are fed in through the config file, and by
// tests.
type Static struct {
	actions map[string]Action
}

// NewStatic normalizes the given labels into a Static provider.
func NewStatic(labels map[string]string) *Static {
	actions := make(map[string]Action, len(labels))
	for sym, raw := range labels {
		actions[market.NormalizeSymbol(sym)] = ParseAction(raw)
	}
	return &Static{actions: actions}
}

func (s *Static) GetSignal(ctx context.Context, symbol string, date time.Time) (Signal, error) {
	sym := market.NormalizeSymbol(symbol)
	action, ok := s.actions[sym]
	if !ok {
		action = Hold
	}
	return Signal{Symbol: sym, Action: action}, nil
}
