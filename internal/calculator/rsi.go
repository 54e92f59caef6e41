package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// RSISeries computes the Relative Strength Index over the period using
// rolling means of gains and losses.
//
// When the loss mean is exactly zero and the gain mean is positive, RSI
// saturates to 100 instead of dividing by zero. A fully flat window (both
// means zero) has no meaningful reading and stays undefined.
func RSISeries(bars []model.OHLCV, period int) (model.Series, error) {
	out := model.NewSeries(len(bars))
	if period <= 0 {
		return out, fmt.Errorf("%w: rsi period must be positive, got %d", model.ErrInvalidInput, period)
	}

	closes := extractCloses(bars)
	gains := model.NewSeries(len(bars))
	losses := model.NewSeries(len(bars))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains.Set(i, delta)
			losses.Set(i, 0)
		} else {
			gains.Set(i, 0)
			losses.Set(i, -delta)
		}
	}

	avgGain := rollingMean(gains, period)
	avgLoss := rollingMean(losses, period)
	for i := 0; i < len(bars); i++ {
		g, okG := avgGain.At(i)
		l, okL := avgLoss.At(i)
		if !okG || !okL {
			continue
		}
		if l == 0 {
			if g > 0 {
				out.Set(i, 100.0)
			}
			continue // flat window: undefined
		}
		rs := g / l
		out.Set(i, 100.0-100.0/(1.0+rs))
	}

	if len(bars) < period+1 {
		return out, fmt.Errorf("%w: rsi(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period+1, len(bars))
	}
	return out, nil
}
