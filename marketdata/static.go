package marketdata

import (
	"context"

	"github.com/rustyeddy/swing/market"
)

// Static serves snapshots from memory. Tests and examples seed it directly.
type Static struct {
	snapshots map[string]Snapshot
}

func NewStatic() *Static {
	return &Static{snapshots: make(map[string]Snapshot)}
}

// SetMarketCap records a market cap for the symbol.
func (s *Static) SetMarketCap(symbol string, cap float64) {
	snap := s.snapshots[market.NormalizeSymbol(symbol)]
	snap.MarketCap = cap
	snap.HasMarketCap = true
	s.snapshots[market.NormalizeSymbol(symbol)] = snap
}

// SetHistory records the daily bars for the symbol.
func (s *Static) SetHistory(symbol string, hist market.Series) {
	snap := s.snapshots[market.NormalizeSymbol(symbol)]
	snap.History = hist
	s.snapshots[market.NormalizeSymbol(symbol)] = snap
}

func (s *Static) Snapshot(ctx context.Context, symbol string) (Snapshot, error) {
	return s.snapshots[market.NormalizeSymbol(symbol)], nil
}
