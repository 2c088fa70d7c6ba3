package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "run_id", "time", "symbol", "action", "kind",
		"quantity", "price", "stop_pct", "setup", "volatility", "reason",
	}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordDecision(d DecisionRecord) error {
	err := j.w.Write([]string{
		d.ID,
		d.RunID,
		d.Time.UTC().Format(time.RFC3339),
		d.Symbol,
		d.Action,
		d.Kind,
		strconv.FormatInt(d.Quantity, 10),
		f(d.Price),
		f(d.StopPct),
		d.Setup,
		f(d.Volatility),
		d.Reason,
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
