package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/swing/broker/sim"
	"github.com/rustyeddy/swing/config"
	"github.com/rustyeddy/swing/engine"
	"github.com/rustyeddy/swing/journal"
	"github.com/rustyeddy/swing/marketdata"
	"github.com/rustyeddy/swing/pkg/logger"
	"github.com/rustyeddy/swing/signal"
)

// buildPass assembles every collaborator from the config and returns a
// closure that runs one daily pass. The daemon reuses the same wiring on
// every tick.
func buildPass(cfg *config.Config) (run func(ctx context.Context) (*engine.PassResult, error), cleanup func(), log zerolog.Logger, err error) {
	log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	var j journal.Journal = journal.Nop{}
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.File)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return nil, nil, log, fmt.Errorf("create journal: %w", err)
	}

	data := marketdata.NewCSVDir(cfg.Data.Dir, cfg.Data.MarketCaps)

	b := sim.New(cfg.Account.Cash, log)
	for sym, qty := range cfg.Account.Positions {
		b.SetPosition(sym, qty, 0)
	}
	seedPrices(b, cfg, data, log)

	eng, err := engine.New(engine.Config{
		Broker:  b,
		Signals: signal.NewStatic(cfg.Signals),
		Data:    data,
		Budget:  cfg.Risk,
		Journal: j,
		Log:     log,
		DryRun:  cfg.DryRun,
	})
	if err != nil {
		j.Close()
		return nil, nil, log, err
	}

	run = func(ctx context.Context) (*engine.PassResult, error) {
		return eng.RunPass(ctx, cfg.Universe)
	}
	cleanup = func() { j.Close() }
	return run, cleanup, log, nil
}

// seedPrices gives the paper broker a last price per symbol: an explicit
// config price wins, otherwise the most recent close from the data
// directory.
func seedPrices(b *sim.Broker, cfg *config.Config, data *marketdata.CSVDir, log zerolog.Logger) {
	for sym, px := range cfg.Account.Prices {
		b.SetPrice(sym, px)
	}
	for _, sym := range cfg.Universe {
		if _, ok := cfg.Account.Prices[sym]; ok {
			continue
		}
		snap, err := data.Snapshot(context.Background(), sym)
		if err != nil {
			log.Warn().Err(err).Str("symbol", sym).Msg("could not seed price from history")
			continue
		}
		if last, ok := snap.History.Last(); ok {
			b.SetPrice(sym, last.Close)
		}
	}
}
