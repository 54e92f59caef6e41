package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// MACDResult holds the MACD line, its signal line, and the histogram,
// all aligned to the input bars.
type MACDResult struct {
	MACD      model.Series
	Signal    model.Series
	Histogram model.Series
}

// MACDSeries computes the MACD family: fast EMA minus slow EMA, a signal
// EMA over the MACD line, and the histogram difference.
func MACDSeries(bars []model.OHLCV, fast, slow, signal int) (MACDResult, error) {
	n := len(bars)
	res := MACDResult{
		MACD:      model.NewSeries(n),
		Signal:    model.NewSeries(n),
		Histogram: model.NewSeries(n),
	}
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return res, fmt.Errorf("%w: macd periods must be positive, got %d/%d/%d", model.ErrInvalidInput, fast, slow, signal)
	}
	if fast >= slow {
		return res, fmt.Errorf("%w: macd fast period %d must be below slow period %d", model.ErrInvalidInput, fast, slow)
	}

	closes := fullSeries(extractCloses(bars))
	fastEMA := emaSeries(closes, fast)
	slowEMA := emaSeries(closes, slow)

	for i := 0; i < n; i++ {
		f, okF := fastEMA.At(i)
		s, okS := slowEMA.At(i)
		if okF && okS {
			res.MACD.Set(i, f-s)
		}
	}

	res.Signal = emaSeries(res.MACD, signal)
	for i := 0; i < n; i++ {
		m, okM := res.MACD.At(i)
		s, okS := res.Signal.At(i)
		if okM && okS {
			res.Histogram.Set(i, m-s)
		}
	}

	if n < slow+signal-1 {
		return res, fmt.Errorf("%w: macd(%d/%d/%d) needs %d bars, have %d", model.ErrInsufficientData, fast, slow, signal, slow+signal-1, n)
	}
	return res, nil
}

// CrossoverAt labels the MACD line against the signal line at index i.
// Bullish when MACD is above the signal line, Bearish otherwise.
func (r MACDResult) CrossoverAt(i int) (model.Crossover, bool) {
	m, okM := r.MACD.At(i)
	s, okS := r.Signal.At(i)
	if !okM || !okS {
		return "", false
	}
	if m > s {
		return model.CrossoverBullish, true
	}
	return model.CrossoverBearish, true
}
