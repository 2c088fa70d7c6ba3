// Package marketdata supplies the fundamental/technical inputs the engine
// needs per instrument: an approximate market cap and roughly six months of
// daily bars.
package marketdata

import (
	"context"

	"github.com/rustyeddy/swing/market"
)

// Snapshot bundles what one lookup returns. HasMarketCap distinguishes "the
// provider could not say" from an actual figure; an empty History means no
// usable bars.
type Snapshot struct {
	MarketCap    float64
	HasMarketCap bool
	History      market.Series
}

// Provider fetches a Snapshot for one symbol. A returned error is treated
// by callers the same as an empty Snapshot: data unavailable, skip the
// instrument, never abort the run.
type Provider interface {
	Snapshot(ctx context.Context, symbol string) (Snapshot, error)
}
