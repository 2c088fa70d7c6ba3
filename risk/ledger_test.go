package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_CountCeiling(t *testing.T) {
	t.Parallel()

	b := DefaultBudget() // 5 open trades max
	equity := 100000.0

	l := NewLedger(5, 5*b.RiskPerTrade*equity)
	assert.False(t, l.CanOpen(b, equity), "at the count ceiling")

	l = NewLedger(4, 4*b.RiskPerTrade*equity)
	assert.True(t, l.CanOpen(b, equity))

	l.RecordOpen(b.RiskPerTrade * equity)
	assert.False(t, l.CanOpen(b, equity), "recording the fifth open hits the ceiling")
}

func TestLedger_RiskCeiling(t *testing.T) {
	t.Parallel()

	// Big per-trade risk so the aggregate cap binds before the count cap.
	b := Budget{
		RiskPerTrade:        0.06,
		MaxTotalRisk:        0.15,
		MaxOpenTrades:       10,
		MaxPositionExposure: 0.5,
	}
	equity := 100000.0

	l := NewLedger(0, 0)
	assert.True(t, l.CanOpen(b, equity))
	l.RecordOpen(0.06 * equity)

	assert.True(t, l.CanOpen(b, equity), "0.12 projected, under 0.15")
	l.RecordOpen(0.06 * equity)

	assert.False(t, l.CanOpen(b, equity), "0.18 projected, over 0.15")
}

func TestLedger_CloseDecrementsCountOnly(t *testing.T) {
	t.Parallel()

	l := NewLedger(2, 2000)
	l.RecordClose()

	assert.Equal(t, 1, l.OpenTrades())
	assert.Equal(t, 2000.0, l.RiskInUse(), "risk in use stays put on close")
}

func TestLedger_CloseFloorsAtZero(t *testing.T) {
	t.Parallel()

	l := NewLedger(0, 0)
	l.RecordClose()
	assert.Equal(t, 0, l.OpenTrades())
}

func TestNewLedger_ClampsNegatives(t *testing.T) {
	t.Parallel()

	l := NewLedger(-3, -100)
	assert.Equal(t, 0, l.OpenTrades())
	assert.Equal(t, 0.0, l.RiskInUse())
}
