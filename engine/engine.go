// Package engine runs the daily swing pass: one sequential walk over the
// instrument universe that turns external signals into sized open/close
// decisions under the portfolio's risk ceilings.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/swing/broker"
	"github.com/rustyeddy/swing/indicators"
	"github.com/rustyeddy/swing/journal"
	"github.com/rustyeddy/swing/market"
	"github.com/rustyeddy/swing/marketdata"
	"github.com/rustyeddy/swing/pkg/id"
	"github.com/rustyeddy/swing/risk"
	"github.com/rustyeddy/swing/signal"
)

// Config wires an Engine. Broker, Signals and Data are required; Journal
// defaults to a no-op.
type Config struct {
	Broker  broker.Broker
	Signals signal.Provider
	Data    marketdata.Provider
	Budget  risk.Budget
	Journal journal.Journal
	Log     zerolog.Logger

	// DryRun computes and journals decisions without submitting orders.
	// The ledger still advances so the pass stays internally consistent.
	DryRun bool
}

type Engine struct {
	broker  broker.Broker
	signals signal.Provider
	data    marketdata.Provider
	budget  risk.Budget
	journal journal.Journal
	log     zerolog.Logger
	dryRun  bool
}

func New(cfg Config) (*Engine, error) {
	if cfg.Broker == nil {
		return nil, fmt.Errorf("engine: broker is required")
	}
	if cfg.Signals == nil {
		return nil, fmt.Errorf("engine: signal provider is required")
	}
	if cfg.Data == nil {
		return nil, fmt.Errorf("engine: market data provider is required")
	}
	if err := cfg.Budget.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if cfg.Journal == nil {
		cfg.Journal = journal.Nop{}
	}

	return &Engine{
		broker:  cfg.Broker,
		signals: cfg.Signals,
		data:    cfg.Data,
		budget:  cfg.Budget,
		journal: cfg.Journal,
		log:     cfg.Log.With().Str("component", "engine").Logger(),
		dryRun:  cfg.DryRun,
	}, nil
}

// PassResult is what one pass produced, with the snapshot it started from.
type PassResult struct {
	RunID       string
	Date        time.Time
	Equity      float64
	OpenAtStart int
	Decisions   []Decision
}

// RunPass walks the universe once, in the given order, and returns one
// decision per instrument. Equity and positions are snapshotted once up
// front; the shared ledger carries the effect of earlier decisions to later
// instruments. Unavailable data skips an instrument, never the run; an
// unreadable account aborts before any instrument is touched.
func (e *Engine) RunPass(ctx context.Context, universe []string) (*PassResult, error) {
	equity, err := e.broker.GetEquity(ctx)
	if err != nil {
		return nil, fmt.Errorf("get equity: %w", err)
	}
	if equity <= 0 {
		return nil, fmt.Errorf("account equity %v is not positive", equity)
	}

	positions, err := e.broker.GetAllPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	symbols := make([]string, len(universe))
	managed := make(map[string]bool, len(universe))
	for i, raw := range universe {
		symbols[i] = market.NormalizeSymbol(raw)
		managed[symbols[i]] = true
	}

	held := make(map[string]int64, len(positions))
	openCount := 0
	for _, p := range positions {
		sym := market.NormalizeSymbol(p.Symbol)
		held[sym] = p.Quantity
		// Only positions in the managed universe count as swing trades.
		if p.Quantity != 0 && managed[sym] {
			openCount++
		}
	}

	ledger := risk.NewLedger(openCount, float64(openCount)*e.budget.RiskPerTrade*equity)

	res := &PassResult{
		RunID:       id.New(),
		Date:        time.Now(),
		Equity:      equity,
		OpenAtStart: openCount,
	}

	e.log.Info().
		Str("run_id", res.RunID).
		Float64("equity", equity).
		Int("open_trades", openCount).
		Float64("risk_in_use_pct", ledger.RiskInUse()/equity*100).
		Float64("max_total_risk_pct", e.budget.MaxTotalRisk*100).
		Bool("dry_run", e.dryRun).
		Msg("starting daily pass")

	for _, sym := range symbols {
		d := e.decide(ctx, sym, res.Date, equity, held[sym], ledger)
		res.Decisions = append(res.Decisions, d)

		if err := e.journal.RecordDecision(journal.DecisionRecord{
			ID:         id.New(),
			RunID:      res.RunID,
			Time:       res.Date,
			Symbol:     d.Symbol,
			Action:     string(d.Action),
			Kind:       string(d.Kind),
			Quantity:   d.Quantity,
			Price:      d.Price,
			StopPct:    d.StopPct,
			Setup:      string(d.Setup),
			Volatility: d.Volatility,
			Reason:     string(d.Reason),
		}); err != nil {
			e.log.Warn().Err(err).Str("symbol", d.Symbol).Msg("journal write failed")
		}
	}

	e.log.Info().
		Str("run_id", res.RunID).
		Int("open_trades", ledger.OpenTrades()).
		Float64("risk_in_use_pct", ledger.RiskInUse()/equity*100).
		Msg("daily pass finished")

	return res, nil
}

// decide runs the per-instrument state machine. Exactly one branch fires;
// only accepted OPEN/CLOSE decisions mutate the ledger.
func (e *Engine) decide(ctx context.Context, sym string, date time.Time, equity float64, pos int64, ledger *risk.Ledger) Decision {
	log := e.log.With().Str("symbol", sym).Logger()

	sig, err := e.signals.GetSignal(ctx, sym, date)
	if err != nil {
		log.Warn().Err(err).Msg("signal unavailable")
		return Decision{Symbol: sym, Action: signal.Hold, Kind: Skip, Reason: ReasonNoSignal}
	}

	log.Debug().Str("action", string(sig.Action)).Int64("position", pos).Msg("signal")

	var d Decision
	switch sig.Action {
	case signal.Sell:
		d = e.decideExit(ctx, sym, pos, ledger, log)
	case signal.Buy:
		d = e.decideEntry(ctx, sym, equity, pos, ledger, log)
	default:
		d = Decision{Symbol: sym, Kind: Skip, Reason: ReasonHold}
	}
	d.Action = sig.Action
	return d
}

func (e *Engine) decideExit(ctx context.Context, sym string, pos int64, ledger *risk.Ledger, log zerolog.Logger) Decision {
	if pos <= 0 {
		log.Info().Msg("sell signal with no position to close")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonNoPositionToClose}
	}

	if !e.dryRun {
		if _, err := e.submit(ctx, sym, broker.Sell, pos); err != nil {
			log.Error().Err(err).Msg("close order failed")
			return Decision{Symbol: sym, Kind: Skip, Reason: ReasonOrderFailed}
		}
	}
	ledger.RecordClose()

	log.Info().Int64("qty", pos).Msg("closing swing position")
	return Decision{Symbol: sym, Kind: Close, Quantity: pos, Reason: ReasonSellSignal}
}

func (e *Engine) decideEntry(ctx context.Context, sym string, equity float64, pos int64, ledger *risk.Ledger, log zerolog.Logger) Decision {
	// One lot per symbol, no pyramiding.
	if pos > 0 {
		log.Info().Int64("position", pos).Msg("already open, not adding")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonAlreadyOpen}
	}

	if !ledger.CanOpen(e.budget, equity) {
		log.Info().Int("open_trades", ledger.OpenTrades()).
			Float64("risk_in_use", ledger.RiskInUse()).
			Msg("risk or trade-count ceiling reached")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonRiskOrCountLimit}
	}

	snap, err := e.data.Snapshot(ctx, sym)
	if err != nil {
		log.Warn().Err(err).Msg("market data unavailable")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonMcapUnavailable}
	}
	if !snap.HasMarketCap {
		log.Warn().Msg("market cap unavailable")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonMcapUnavailable}
	}
	if snap.MarketCap < e.budget.MinMarketCap {
		log.Info().Float64("market_cap", snap.MarketCap).
			Float64("floor", e.budget.MinMarketCap).
			Msg("below market cap floor")
		return Decision{Symbol: sym, Kind: Skip, Reason: ReasonMarketCapFloor}
	}

	vol, volKnown := indicators.AnnualizedVolatility(snap.History)
	setup := indicators.ClassifySetup(snap.History)
	stopPct := risk.StopPct(vol, volKnown, setup)

	d := Decision{
		Symbol:     sym,
		Setup:      setup,
		Volatility: vol,
		VolKnown:   volKnown,
		StopPct:    stopPct,
	}

	price, err := e.broker.GetLastPrice(ctx, sym)
	if err != nil || price <= 0 {
		log.Warn().Err(err).Msg("no usable price for sizing")
		d.Kind, d.Reason = Skip, ReasonNoPrice
		return d
	}
	d.Price = price

	size := risk.Size(risk.SizeInputs{
		Equity:         equity,
		RiskPct:        e.budget.RiskPerTrade,
		Price:          price,
		StopPct:        stopPct,
		MaxExposurePct: e.budget.MaxPositionExposure,
	})
	if size.Quantity <= 0 {
		log.Info().Msg("sized to zero, not trading")
		d.Kind, d.Reason = Skip, ReasonSizingZero
		return d
	}

	if !e.dryRun {
		if _, err := e.submit(ctx, sym, broker.Buy, size.Quantity); err != nil {
			log.Error().Err(err).Msg("open order failed")
			d.Kind, d.Reason = Skip, ReasonOrderFailed
			return d
		}
	}
	ledger.RecordOpen(size.RiskAmount)

	log.Info().
		Int64("qty", size.Quantity).
		Float64("price", price).
		Float64("stop_pct", stopPct*100).
		Str("setup", string(setup)).
		Float64("risk_amount", size.RiskAmount).
		Bool("exposure_clamped", size.Clamped).
		Msg("opening swing position")

	d.Kind = Open
	d.Quantity = size.Quantity
	d.Reason = ReasonBuySignal
	d.RiskAmount = size.RiskAmount
	return d
}

func (e *Engine) submit(ctx context.Context, sym string, side broker.Side, qty int64) (broker.OrderAck, error) {
	ack, err := e.broker.SubmitMarketOrder(ctx, broker.MarketOrderRequest{
		Symbol:   sym,
		Side:     side,
		Quantity: qty,
	})
	if err != nil {
		return broker.OrderAck{}, err
	}
	return ack, nil
}
