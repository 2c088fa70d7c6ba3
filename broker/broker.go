package broker

import (
	"context"
	"errors"
)

var (
	// ErrNoPrice is returned when the broker cannot produce a usable last
	// price for an instrument. Callers treat it as "data unavailable", not
	// as a fatal condition.
	ErrNoPrice = errors.New("no price available")

	// ErrNotConnected is returned when account state is requested from a
	// disconnected session. This one is fatal for a pass.
	ErrNotConnected = errors.New("broker not connected")
)

// Side of a market order.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Broker is the account/session surface the decision engine needs. Real
// connectivity (TWS gateway, REST sessions) lives behind this interface and
// out of the engine's sight; broker/sim provides the paper implementation.
type Broker interface {
	// GetEquity returns the account's net liquidation value. It fails when
	// the session is down or the account state is unreadable.
	GetEquity(ctx context.Context) (float64, error)

	// GetAllPositions returns every open position on the account.
	GetAllPositions(ctx context.Context) ([]Position, error)

	// GetPosition returns the signed share count for one symbol, 0 if none.
	GetPosition(ctx context.Context, symbol string) (int64, error)

	// GetLastPrice returns a price usable for sizing, or ErrNoPrice.
	GetLastPrice(ctx context.Context, symbol string) (float64, error)

	// SubmitMarketOrder places a market order. Quantity <= 0 is a no-op
	// acknowledged with StatusIgnored.
	SubmitMarketOrder(ctx context.Context, req MarketOrderRequest) (OrderAck, error)
}

// Position is one open holding on the account.
type Position struct {
	Symbol   string
	Quantity int64 // signed share count
	AvgCost  float64
	Account  string
}

// MarketOrderRequest asks for an immediate fill of Quantity shares.
type MarketOrderRequest struct {
	Symbol   string
	Side     Side
	Quantity int64
}

// Order acknowledgement statuses.
const (
	StatusFilled  = "Filled"
	StatusIgnored = "Ignored"
)

// OrderAck is the broker's receipt for a submitted order.
type OrderAck struct {
	OrderID  string
	Symbol   string
	Side     Side
	Quantity int64
	Price    float64
	Status   string
}
