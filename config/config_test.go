package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestSaveAndLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swing.yaml")
	cfg := Default()
	cfg.DryRun = true
	cfg.Signals = map[string]string{"AMZN": "BUY"}

	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Universe, got.Universe)
	assert.Equal(t, cfg.Risk, got.Risk)
	assert.True(t, got.DryRun)
	assert.Equal(t, "BUY", got.Signals["AMZN"])
}

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swing.json")
	cfg := Default()

	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Risk, got.Risk)
	assert.Equal(t, cfg.Account.Cash, got.Account.Cash)
}

func TestLoadRejectsBadRiskBudget(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "swing.yaml")
	cfg := Default()
	cfg.Risk.MaxTotalRisk = 0.001 // below risk_per_trade
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "max_total_risk")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		errStr string
	}{
		{"no cash", func(c *Config) { c.Account.Cash = 0 }, "cash"},
		{"empty universe", func(c *Config) { c.Universe = nil }, "universe"},
		{"blank symbol", func(c *Config) { c.Universe = []string{" "} }, "empty symbol"},
		{"duplicate symbol", func(c *Config) { c.Universe = []string{"spy", "SPY"} }, "twice"},
		{"csv journal needs file", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }, "journal.file"},
		{"sqlite journal needs path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }, "db_path"},
		{"unknown journal type", func(c *Config) { c.Journal.Type = "parquet" }, "journal.type"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errStr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")
}
