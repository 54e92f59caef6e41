package calculator

import (
	"fmt"
	"math"

	"QuantSentinel/internal/model"
)

// TrueRangeSeries computes the per-bar True Range: the largest of
// high-low, |high-prev close| and |low-prev close|. The first bar has no
// previous close and falls back to high-low.
func TrueRangeSeries(bars []model.OHLCV) model.Series {
	out := model.NewSeries(len(bars))
	for i, b := range bars {
		tr := b.High - b.Low
		if i > 0 {
			prev := bars[i-1].Close
			tr = math.Max(tr, math.Max(math.Abs(b.High-prev), math.Abs(b.Low-prev)))
		}
		out.Set(i, tr)
	}
	return out
}

// ATRSeries computes the Average True Range as a rolling mean of True Range.
func ATRSeries(bars []model.OHLCV, period int) (model.Series, error) {
	if period <= 0 {
		return model.NewSeries(len(bars)), fmt.Errorf("%w: atr period must be positive, got %d", model.ErrInvalidInput, period)
	}
	out := rollingMean(TrueRangeSeries(bars), period)
	if len(bars) < period {
		return out, fmt.Errorf("%w: atr(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, len(bars))
	}
	return out, nil
}

// ATRPctSeries expresses ATR as a percentage of the close price.
func ATRPctSeries(bars []model.OHLCV, atr model.Series) model.Series {
	out := model.NewSeries(len(bars))
	for i := range bars {
		a, ok := atr.At(i)
		if !ok || bars[i].Close == 0 {
			continue
		}
		out.Set(i, a/bars[i].Close*100)
	}
	return out
}
