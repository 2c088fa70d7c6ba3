package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/swing/market"
	"github.com/rustyeddy/swing/risk"
)

// Config is the complete daily-pass configuration.
type Config struct {
	Account  AccountConfig     `json:"account" yaml:"account"`
	Universe []string          `json:"universe" yaml:"universe"`
	Risk     risk.Budget       `json:"risk" yaml:"risk"`
	Signals  map[string]string `json:"signals,omitempty" yaml:"signals,omitempty"`
	Data     DataConfig        `json:"data" yaml:"data"`
	Journal  JournalConfig     `json:"journal" yaml:"journal"`
	Log      LogConfig         `json:"log" yaml:"log"`
	Schedule string            `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	DryRun   bool              `json:"dry_run" yaml:"dry_run"`
}

// AccountConfig seeds the paper account.
type AccountConfig struct {
	ID        string             `json:"id" yaml:"id"`
	Currency  string             `json:"currency" yaml:"currency"`
	Cash      float64            `json:"cash" yaml:"cash"`
	Positions map[string]int64   `json:"positions,omitempty" yaml:"positions,omitempty"`
	Prices    map[string]float64 `json:"prices,omitempty" yaml:"prices,omitempty"`
}

// DataConfig locates market data: a directory of <SYMBOL>.csv daily bars
// and a market-cap table.
type DataConfig struct {
	Dir        string             `json:"dir" yaml:"dir"`
	MarketCaps map[string]float64 `json:"market_caps,omitempty" yaml:"market_caps,omitempty"`
}

// JournalConfig selects where decisions are persisted.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML (or JSON for .json paths).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration, including the risk budget invariants.
// A failing config is fatal before any pass starts.
func (c *Config) Validate() error {
	if c.Account.Cash <= 0 {
		return fmt.Errorf("account.cash must be positive")
	}
	if len(c.Universe) == 0 {
		return fmt.Errorf("universe must list at least one symbol")
	}
	seen := make(map[string]bool, len(c.Universe))
	for _, raw := range c.Universe {
		sym := market.NormalizeSymbol(raw)
		if sym == "" {
			return fmt.Errorf("universe contains an empty symbol")
		}
		if seen[sym] {
			return fmt.Errorf("universe lists %s twice", sym)
		}
		seen[sym] = true
	}
	if err := c.Risk.Validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.File == "" {
			return fmt.Errorf("journal.file required for csv journal")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "", "none":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration matching the reference swing portfolio:
// large-cap US names and ETFs, 1%/15% risk budget, paper account.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "PAPER-001",
			Currency: "USD",
			Cash:     100000,
		},
		Universe: []string{
			"AMZN", // big tech / growth
			"JPM",  // financials
			"XOM",  // energy
			"JNJ",  // defensives
			"PG",
			"SPY", // broad ETFs, liquid enough for swing
			"QQQ",
			"IWM",
		},
		Risk: risk.DefaultBudget(),
		Data: DataConfig{
			Dir: "./data",
		},
		Journal: JournalConfig{
			Type: "csv",
			File: "./decisions.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Schedule: "30 21 * * MON-FRI", // after the US close, UTC
	}
}
