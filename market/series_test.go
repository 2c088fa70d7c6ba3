package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeriesCloses(t *testing.T) {
	t.Parallel()

	s := Series{
		{Time: time.Now(), Close: 100},
		{Time: time.Now(), Close: 101.5},
		{Time: time.Now(), Close: 99},
	}

	assert.Equal(t, []float64{100, 101.5, 99}, s.Closes())
	assert.Empty(t, Series{}.Closes())
}

func TestSeriesLast(t *testing.T) {
	t.Parallel()

	_, ok := Series{}.Last()
	assert.False(t, ok)

	s := Series{{Close: 1}, {Close: 2}}
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, 2.0, last.Close)
}

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AMZN", NormalizeSymbol(" amzn "))
	assert.Equal(t, "SPY", NormalizeSymbol("SPY"))
	assert.Equal(t, "", NormalizeSymbol("   "))
}
