package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySetup_ShortSeriesIsOther(t *testing.T) {
	t.Parallel()

	closes := make([]float64, MinSetupSamples-1)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	assert.Equal(t, SetupOther, ClassifySetup(seriesFromCloses(closes)))
	assert.Equal(t, SetupOther, ClassifySetup(nil))
}

func TestClassifySetup_RisingSeriesIsTrendChange(t *testing.T) {
	t.Parallel()

	// Steadily rising closes: the last close is the window max, so the 1%
	// breakout margin is out of reach, but it sits above the 50-day SMA.
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}

	assert.Equal(t, SetupTrendChange, ClassifySetup(seriesFromCloses(closes)))
}

func TestClassifySetup_DecliningSeriesIsOther(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}

	assert.Equal(t, SetupOther, ClassifySetup(seriesFromCloses(closes)))
}

func TestClassifySetup_PullbackBelowMAIsOther(t *testing.T) {
	t.Parallel()

	// Rally then a deep pullback that undercuts the 50-day SMA.
	closes := make([]float64, 80)
	for i := 0; i < 60; i++ {
		closes[i] = 100 + float64(i)
	}
	for i := 60; i < 80; i++ {
		closes[i] = 160 - 4*float64(i-60)
	}

	assert.Equal(t, SetupOther, ClassifySetup(seriesFromCloses(closes)))
}

func TestClassifySetup_BreakoutWinsOverTrendChange(t *testing.T) {
	t.Parallel()

	// The breakout test runs before the SMA test. The window max includes
	// the last close, so the margin can only be met when the max is
	// negative; this degenerate shape exercises the precedence directly.
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = -100
	}
	closes[79] = -99 // >= 1.01*max and above the SMA

	assert.Equal(t, SetupBreakout, ClassifySetup(seriesFromCloses(closes)))
}
