package marketdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rustyeddy/swing/market"
)

// CSVDir reads daily bars from <dir>/<SYMBOL>.csv files with a
// date,open,high,low,close,volume header row, and market caps from a map
// supplied by configuration. A missing file yields an empty history; a
// missing market cap entry yields HasMarketCap=false. Both are "data
// unavailable" to the engine, not errors.
type CSVDir struct {
	dir  string
	caps map[string]float64
}

func NewCSVDir(dir string, caps map[string]float64) *CSVDir {
	norm := make(map[string]float64, len(caps))
	for sym, c := range caps {
		norm[market.NormalizeSymbol(sym)] = c
	}
	return &CSVDir{dir: dir, caps: norm}
}

func (p *CSVDir) Snapshot(ctx context.Context, symbol string) (Snapshot, error) {
	sym := market.NormalizeSymbol(symbol)

	var snap Snapshot
	if c, ok := p.caps[sym]; ok {
		snap.MarketCap = c
		snap.HasMarketCap = true
	}

	hist, err := loadCandleCSV(filepath.Join(p.dir, sym+".csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return snap, fmt.Errorf("load history for %s: %w", sym, err)
	}
	snap.History = hist

	return snap, nil
}

func loadCandleCSV(path string) (market.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	// Header row
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var series market.Series
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		t, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", rec[0], err)
		}

		var vals [5]float64
		for i := 0; i < 5; i++ {
			vals[i], err = strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("bad field %q: %w", rec[i+1], err)
			}
		}

		series = append(series, market.Candle{
			Time:   t,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	return series, nil
}
