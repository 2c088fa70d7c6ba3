package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize_ExposureClamp(t *testing.T) {
	t.Parallel()

	// 1% of 100k = 1000 at risk, 1.50 risk per share -> 666 raw, but 8% of
	// equity caps the position at 8000 of capital -> 160 shares.
	got := Size(SizeInputs{
		Equity:         100000,
		RiskPct:        0.01,
		Price:          50,
		StopPct:        0.03,
		MaxExposurePct: 0.08,
	})

	assert.Equal(t, int64(160), got.Quantity)
	assert.True(t, got.Clamped)
	assert.InDelta(t, 1000.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, 1.5, got.RiskPerShare, 1e-9)
	assert.InDelta(t, 8000.0, got.Capital, 1e-9)
}

func TestSize_NoClampNeeded(t *testing.T) {
	t.Parallel()

	got := Size(SizeInputs{
		Equity:         100000,
		RiskPct:        0.01,
		Price:          50,
		StopPct:        0.03,
		MaxExposurePct: 1.0,
	})

	assert.Equal(t, int64(666), got.Quantity)
	assert.False(t, got.Clamped)
}

func TestSize_CannotSize(t *testing.T) {
	t.Parallel()

	zero := SizeInputs{Equity: 100000, RiskPct: 0.01, Price: 0, StopPct: 0.03, MaxExposurePct: 0.08}
	assert.Equal(t, int64(0), Size(zero).Quantity)

	zero.Price = 50
	zero.StopPct = 0
	assert.Equal(t, int64(0), Size(zero).Quantity)

	zero.StopPct = -0.03
	assert.Equal(t, int64(0), Size(zero).Quantity)
}

func TestSize_ExpensiveShareSizesToZero(t *testing.T) {
	t.Parallel()

	// Risk budget too small for even one share's risk.
	got := Size(SizeInputs{
		Equity:         1000,
		RiskPct:        0.01, // 10 at risk
		Price:          5000,
		StopPct:        0.05, // 250 per share
		MaxExposurePct: 0.08,
	})
	assert.Equal(t, int64(0), got.Quantity)
}

func TestSize_ExposureInvariant(t *testing.T) {
	t.Parallel()

	cases := []SizeInputs{
		{Equity: 100000, RiskPct: 0.01, Price: 50, StopPct: 0.03, MaxExposurePct: 0.08},
		{Equity: 100000, RiskPct: 0.02, Price: 3.37, StopPct: 0.024, MaxExposurePct: 0.08},
		{Equity: 25000, RiskPct: 0.01, Price: 999.99, StopPct: 0.06, MaxExposurePct: 0.05},
		{Equity: 1e7, RiskPct: 0.005, Price: 0.51, StopPct: 0.072, MaxExposurePct: 0.02},
	}

	for _, in := range cases {
		got := Size(in)
		assert.LessOrEqual(t, float64(got.Quantity)*in.Price, in.Equity*in.MaxExposurePct,
			"exposure cap violated for %+v", in)
		assert.LessOrEqual(t, float64(got.Quantity)*got.RiskPerShare, got.RiskAmount+1e-9,
			"risk budget violated for %+v", in)
	}
}
