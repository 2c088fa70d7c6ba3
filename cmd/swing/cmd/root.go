package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swing",
	Short: "A daily swing-portfolio manager with risk-budgeted position sizing",
	Long: `Swing manages a small swing-trade portfolio one daily pass at a time.

Each pass takes an external directional signal per instrument and decides
whether to open, close or skip, under fixed portfolio ceilings:
  - risk per trade and aggregate risk budget
  - open-trade count limit
  - per-symbol exposure cap
  - market-cap floor

Stops and sizes adapt to each instrument's volatility and setup
(breakout / trend change / other).`,
}

var cfgPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	def := os.Getenv("SWING_CONFIG")
	if def == "" {
		def = "swing.yaml"
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "f", def, "path to config file (YAML or JSON)")
}
