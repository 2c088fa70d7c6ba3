package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/swing/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the daily pass on a cron schedule",
	Long: `Run passes on the schedule from the config file (standard 5-field
cron syntax, e.g. "30 21 * * MON-FRI" for 21:30 UTC on weekdays) until
interrupted.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Schedule == "" {
		return fmt.Errorf("config has no schedule; set schedule or use 'swing run'")
	}

	pass, cleanup, log, err := buildPass(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule, func() {
		res, err := pass(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("scheduled pass failed")
			return
		}
		printPassSummary(res)
	})
	if err != nil {
		return fmt.Errorf("bad schedule %q: %w", cfg.Schedule, err)
	}

	c.Start()
	log.Info().Str("schedule", cfg.Schedule).Msg("daemon started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := c.Stop()
	<-ctx.Done()
	log.Info().Msg("daemon stopped")

	return nil
}
