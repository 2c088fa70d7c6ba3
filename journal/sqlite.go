package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordDecision(d DecisionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(id, run_id, time, symbol, action, kind, quantity, price, stop_pct, setup, volatility, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.RunID, d.Time.UTC().Format(time.RFC3339), d.Symbol, d.Action,
		d.Kind, d.Quantity, d.Price, d.StopPct, d.Setup, d.Volatility, d.Reason,
	)
	return err
}

// ListDecisionsByRun returns every record of one pass, in insertion order.
func (j *SQLiteJournal) ListDecisionsByRun(runID string) ([]DecisionRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, run_id, time, symbol, action, kind, quantity, price, stop_pct, setup, volatility, reason
		FROM decisions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		var d DecisionRecord
		var ts string
		if err := rows.Scan(&d.ID, &d.RunID, &ts, &d.Symbol, &d.Action, &d.Kind,
			&d.Quantity, &d.Price, &d.StopPct, &d.Setup, &d.Volatility, &d.Reason); err != nil {
			return nil, err
		}
		d.Time, _ = time.Parse(time.RFC3339, ts)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
