// Package journal persists the decisions a pass produced. Records are
// write-only history for review; a pass never reads them back.
package journal

import "time"

// DecisionRecord is one per-instrument outcome of a pass.
type DecisionRecord struct {
	ID         string // ULID, time-sortable
	RunID      string // shared by every record of one pass
	Time       time.Time
	Symbol     string
	Action     string // signal action: BUY, SELL, HOLD
	Kind       string // OPEN, CLOSE, SKIP
	Quantity   int64
	Price      float64
	StopPct    float64
	Setup      string
	Volatility float64
	Reason     string
}

type Journal interface {
	RecordDecision(DecisionRecord) error
	Close() error
}

// Nop discards every record. Used when journaling is disabled.
type Nop struct{}

func (Nop) RecordDecision(DecisionRecord) error { return nil }
func (Nop) Close() error                        { return nil }
