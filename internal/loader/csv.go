// Package loader reads OHLCV bar series from CSV files. This is the input
// boundary standing in for an external market-data provider.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"QuantSentinel/internal/model"
)

// requiredColumns, in header order.
var requiredColumns = []string{"timestamp", "open", "high", "low", "close", "volume"}

// ReadCSV parses a bar series from a CSV file with a
// timestamp,open,high,low,close,volume header. Timestamps may be RFC3339,
// date-only (2006-01-02), or unix seconds. Bars must be time-ascending.
func ReadCSV(path string) ([]model.OHLCV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]model.OHLCV, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var bars []model.OHLCV
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}

		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", model.ErrInvalidInput, row, err)
		}
		bars = append(bars, bar)
	}

	if err := model.ValidateBars(bars); err != nil {
		return nil, err
	}
	return bars, nil
}

func checkHeader(header []string) error {
	if len(header) < len(requiredColumns) {
		return fmt.Errorf("%w: csv header has %d columns, need %d", model.ErrInvalidInput, len(header), len(requiredColumns))
	}
	for i, want := range requiredColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return fmt.Errorf("%w: csv column %d is %q, want %q", model.ErrInvalidInput, i, header[i], want)
		}
	}
	return nil
}

func parseBar(rec []string) (model.OHLCV, error) {
	ts, err := parseTime(strings.TrimSpace(rec[0]))
	if err != nil {
		return model.OHLCV{}, err
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return model.OHLCV{}, fmt.Errorf("column %q: %v", requiredColumns[i+1], err)
		}
		vals[i] = v
	}
	return model.OHLCV{
		Time:   ts,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
