package risk

import "fmt"

// Budget is the run-scoped risk configuration. It never changes during a
// pass.
type Budget struct {
	// RiskPerTrade is the fraction of equity put at risk per position.
	RiskPerTrade float64 `json:"risk_per_trade" yaml:"risk_per_trade"`

	// MaxTotalRisk caps the aggregate fraction of equity at risk.
	MaxTotalRisk float64 `json:"max_total_risk" yaml:"max_total_risk"`

	// MaxOpenTrades caps how many swing positions may be open at once.
	MaxOpenTrades int `json:"max_open_trades" yaml:"max_open_trades"`

	// MaxPositionExposure caps the fraction of equity held in one symbol.
	MaxPositionExposure float64 `json:"max_position_exposure" yaml:"max_position_exposure"`

	// MinMarketCap excludes instruments below this market cap (in account
	// currency).
	MinMarketCap float64 `json:"min_market_cap" yaml:"min_market_cap"`
}

// DefaultBudget matches the reference swing portfolio: 1% per trade, 15%
// total, 5 open trades, 8% per symbol, $2B market cap floor.
func DefaultBudget() Budget {
	return Budget{
		RiskPerTrade:        0.01,
		MaxTotalRisk:        0.15,
		MaxOpenTrades:       5,
		MaxPositionExposure: 0.08,
		MinMarketCap:        2_000_000_000,
	}
}

// Validate rejects a budget that violates the structural invariants. A bad
// budget is a configuration error and fatal before any pass starts.
func (b Budget) Validate() error {
	if b.RiskPerTrade <= 0 {
		return fmt.Errorf("risk_per_trade must be positive, got %v", b.RiskPerTrade)
	}
	if b.MaxTotalRisk < b.RiskPerTrade {
		return fmt.Errorf("max_total_risk %v must be >= risk_per_trade %v", b.MaxTotalRisk, b.RiskPerTrade)
	}
	if b.MaxTotalRisk > 1 {
		return fmt.Errorf("max_total_risk must be <= 1, got %v", b.MaxTotalRisk)
	}
	if b.MaxOpenTrades < 0 {
		return fmt.Errorf("max_open_trades must be >= 0, got %d", b.MaxOpenTrades)
	}
	if b.MaxPositionExposure <= 0 || b.MaxPositionExposure > 1 {
		return fmt.Errorf("max_position_exposure must be in (0,1], got %v", b.MaxPositionExposure)
	}
	if b.MinMarketCap < 0 {
		return fmt.Errorf("min_market_cap must be >= 0, got %v", b.MinMarketCap)
	}
	return nil
}
