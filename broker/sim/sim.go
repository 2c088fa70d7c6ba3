// Package sim is an in-memory paper broker. It fills market orders
// immediately at the last known price and keeps positions and equity
// consistent, which is all the daily pass needs from a stand-in account.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/swing/broker"
	"github.com/rustyeddy/swing/market"
	"github.com/rustyeddy/swing/pkg/id"
)

type Broker struct {
	mu        sync.Mutex
	connected bool
	cash      float64
	positions map[string]int64
	avgCost   map[string]float64
	prices    map[string]float64
	log       zerolog.Logger
}

// New returns a connected paper broker holding the given cash balance.
func New(cash float64, log zerolog.Logger) *Broker {
	return &Broker{
		connected: true,
		cash:      cash,
		positions: make(map[string]int64),
		avgCost:   make(map[string]float64),
		prices:    make(map[string]float64),
		log:       log.With().Str("component", "sim-broker").Logger(),
	}
}

// Disconnect drops the session; every call after this fails with
// ErrNotConnected until Connect is called again.
func (b *Broker) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = false
}

func (b *Broker) Connect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = true
}

// SetPrice seeds or updates the last price for a symbol.
func (b *Broker) SetPrice(symbol string, price float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prices[market.NormalizeSymbol(symbol)] = price
}

// SetPosition seeds an existing holding, e.g. positions carried in from a
// previous day.
func (b *Broker) SetPosition(symbol string, qty int64, avgCost float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sym := market.NormalizeSymbol(symbol)
	b.positions[sym] = qty
	b.avgCost[sym] = avgCost
}

func (b *Broker) GetEquity(ctx context.Context) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return 0, broker.ErrNotConnected
	}

	equity := b.cash
	for sym, qty := range b.positions {
		if qty == 0 {
			continue
		}
		px, ok := b.prices[sym]
		if !ok {
			// Mark at cost when no market price is known.
			px = b.avgCost[sym]
		}
		equity += float64(qty) * px
	}
	return equity, nil
}

func (b *Broker) GetAllPositions(ctx context.Context) ([]broker.Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return nil, broker.ErrNotConnected
	}

	out := make([]broker.Position, 0, len(b.positions))
	for sym, qty := range b.positions {
		if qty == 0 {
			continue
		}
		out = append(out, broker.Position{
			Symbol:   sym,
			Quantity: qty,
			AvgCost:  b.avgCost[sym],
			Account:  "SIM",
		})
	}
	return out, nil
}

func (b *Broker) GetPosition(ctx context.Context, symbol string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return 0, broker.ErrNotConnected
	}
	return b.positions[market.NormalizeSymbol(symbol)], nil
}

func (b *Broker) GetLastPrice(ctx context.Context, symbol string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return 0, broker.ErrNotConnected
	}
	px, ok := b.prices[market.NormalizeSymbol(symbol)]
	if !ok || px <= 0 {
		return 0, broker.ErrNoPrice
	}
	return px, nil
}

func (b *Broker) SubmitMarketOrder(ctx context.Context, req broker.MarketOrderRequest) (broker.OrderAck, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.connected {
		return broker.OrderAck{}, broker.ErrNotConnected
	}

	sym := market.NormalizeSymbol(req.Symbol)
	ack := broker.OrderAck{
		OrderID:  id.New(),
		Symbol:   sym,
		Side:     req.Side,
		Quantity: req.Quantity,
	}

	if req.Quantity <= 0 {
		b.log.Info().Str("symbol", sym).Str("side", string(req.Side)).
			Int64("qty", req.Quantity).Msg("ignoring order with non-positive quantity")
		ack.Status = broker.StatusIgnored
		return ack, nil
	}

	px, ok := b.prices[sym]
	if !ok || px <= 0 {
		return broker.OrderAck{}, fmt.Errorf("fill %s %s: %w", req.Side, sym, broker.ErrNoPrice)
	}

	signed := req.Quantity
	if req.Side == broker.Sell {
		signed = -signed
	}

	prev := b.positions[sym]
	next := prev + signed
	if signed > 0 && next != 0 {
		// Weighted average cost on adds.
		total := float64(prev)*b.avgCost[sym] + float64(signed)*px
		b.avgCost[sym] = total / float64(next)
	}
	b.positions[sym] = next
	b.cash -= float64(signed) * px

	ack.Price = px
	ack.Status = broker.StatusFilled

	b.log.Debug().Str("symbol", sym).Str("side", string(req.Side)).
		Int64("qty", req.Quantity).Float64("price", px).Msg("order filled")

	return ack, nil
}
