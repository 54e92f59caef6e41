package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// SMASeries computes the simple moving average of closes over the period.
func SMASeries(bars []model.OHLCV, period int) (model.Series, error) {
	if period <= 0 {
		return model.NewSeries(len(bars)), fmt.Errorf("%w: sma period must be positive, got %d", model.ErrInvalidInput, period)
	}
	out := rollingMean(fullSeries(extractCloses(bars)), period)
	if len(bars) < period {
		return out, fmt.Errorf("%w: sma(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, len(bars))
	}
	return out, nil
}

// EMASeries computes the exponential moving average of closes over the period,
// seeded with the simple mean of the first period closes.
func EMASeries(bars []model.OHLCV, period int) (model.Series, error) {
	if period <= 0 {
		return model.NewSeries(len(bars)), fmt.Errorf("%w: ema period must be positive, got %d", model.ErrInvalidInput, period)
	}
	out := emaSeries(fullSeries(extractCloses(bars)), period)
	if len(bars) < period {
		return out, fmt.Errorf("%w: ema(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, len(bars))
	}
	return out, nil
}

// MomentumSeries computes the N-bar percent change of closes.
func MomentumSeries(bars []model.OHLCV, period int) (model.Series, error) {
	out := model.NewSeries(len(bars))
	if period <= 0 {
		return out, fmt.Errorf("%w: momentum period must be positive, got %d", model.ErrInvalidInput, period)
	}
	closes := extractCloses(bars)
	for i := period; i < len(closes); i++ {
		prev := closes[i-period]
		if prev == 0 {
			continue
		}
		out.Set(i, (closes[i]-prev)/prev)
	}
	if len(bars) < period+1 {
		return out, fmt.Errorf("%w: momentum(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period+1, len(bars))
	}
	return out, nil
}
