package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Budget)
		wantErr bool
	}{
		{"default is valid", func(b *Budget) {}, false},
		{"zero risk per trade", func(b *Budget) { b.RiskPerTrade = 0 }, true},
		{"negative risk per trade", func(b *Budget) { b.RiskPerTrade = -0.01 }, true},
		{"total below per trade", func(b *Budget) { b.MaxTotalRisk = 0.005 }, true},
		{"total above one", func(b *Budget) { b.MaxTotalRisk = 1.5 }, true},
		{"negative open trades", func(b *Budget) { b.MaxOpenTrades = -1 }, true},
		{"zero open trades allowed", func(b *Budget) { b.MaxOpenTrades = 0 }, false},
		{"zero exposure", func(b *Budget) { b.MaxPositionExposure = 0 }, true},
		{"exposure above one", func(b *Budget) { b.MaxPositionExposure = 1.01 }, true},
		{"full exposure allowed", func(b *Budget) { b.MaxPositionExposure = 1 }, false},
		{"negative market cap floor", func(b *Budget) { b.MinMarketCap = -1 }, true},
		{"zero market cap floor allowed", func(b *Budget) { b.MinMarketCap = 0 }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := DefaultBudget()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
