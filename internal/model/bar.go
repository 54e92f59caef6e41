package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// ValidateBars checks that the series is strictly time-ascending.
// An empty series is valid (analysis becomes a no-op).
func ValidateBars(bars []OHLCV) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			return fmt.Errorf("%w: bar %d timestamp %s not after bar %d timestamp %s",
				ErrInvalidInput, i, bars[i].Time.Format(time.RFC3339), i-1, bars[i-1].Time.Format(time.RFC3339))
		}
	}
	return nil
}

// Returns computes simple period-over-period returns from closes.
// Output length is len(bars)-1; empty for fewer than two bars.
func Returns(bars []OHLCV) []float64 {
	if len(bars) < 2 {
		return nil
	}
	out := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (bars[i].Close-prev)/prev)
	}
	return out
}
