package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/swing/config"
	"github.com/rustyeddy/swing/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one daily swing pass",
	Long: `Run a single pass over the configured universe: fetch each
instrument's signal, close positions on SELL, and open risk-sized
positions on BUY where the portfolio ceilings allow.

Example:
  swing run -f swing.yaml
  swing run -f swing.yaml --dry-run`,
	RunE: runRun,
}

var runDryRun bool

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "compute decisions without submitting orders")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if runDryRun {
		cfg.DryRun = true
	}

	pass, cleanup, _, err := buildPass(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := pass(context.Background())
	if err != nil {
		return fmt.Errorf("run pass: %w", err)
	}

	printPassSummary(res)
	return nil
}

// printPassSummary renders the pass as a table: the starting snapshot, then
// one row per instrument in decision order.
func printPassSummary(res *engine.PassResult) {
	fmt.Printf("\n=== Daily swing pass %s ===\n", res.Date.Format("2006-01-02"))
	fmt.Printf("Run ID:       %s\n", res.RunID)
	fmt.Printf("Equity:       %.2f\n", res.Equity)
	fmt.Printf("Open trades:  %d (at start)\n\n", res.OpenAtStart)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Symbol", "Signal", "Decision", "Qty", "Price", "Stop %", "Setup", "Vol %", "Reason"})

	for _, d := range res.Decisions {
		t.AppendRow(table.Row{
			d.Symbol,
			string(d.Action),
			string(d.Kind),
			d.Quantity,
			fmtPrice(d.Price),
			fmtPct(d.StopPct),
			string(d.Setup),
			fmtVol(d),
			string(d.Reason),
		})
	}

	fmt.Println(t.Render())
}

func fmtPrice(p float64) string {
	if p <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", p)
}

func fmtPct(p float64) string {
	if p <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", p*100)
}

func fmtVol(d engine.Decision) string {
	if !d.VolKnown {
		return "-"
	}
	return fmt.Sprintf("%.1f", d.Volatility*100)
}
