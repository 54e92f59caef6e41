package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// BollingerResult holds the three bands and the normalized band width.
type BollingerResult struct {
	Upper  model.Series
	Middle model.Series
	Lower  model.Series
	Width  model.Series // (upper-lower)/middle
}

// BollingerSeries computes Bollinger Bands: a period SMA of closes with
// bands at +/- stdDevs population standard deviations.
func BollingerSeries(bars []model.OHLCV, period int, stdDevs float64) (BollingerResult, error) {
	n := len(bars)
	res := BollingerResult{
		Upper:  model.NewSeries(n),
		Middle: model.NewSeries(n),
		Lower:  model.NewSeries(n),
		Width:  model.NewSeries(n),
	}
	if period <= 0 {
		return res, fmt.Errorf("%w: bollinger period must be positive, got %d", model.ErrInvalidInput, period)
	}
	if stdDevs <= 0 {
		return res, fmt.Errorf("%w: bollinger band width must be positive, got %g", model.ErrInvalidInput, stdDevs)
	}

	closes := fullSeries(extractCloses(bars))
	res.Middle = rollingMean(closes, period)
	std := rollingStd(closes, period)

	for i := 0; i < n; i++ {
		m, okM := res.Middle.At(i)
		s, okS := std.At(i)
		if !okM || !okS {
			continue
		}
		upper := m + stdDevs*s
		lower := m - stdDevs*s
		res.Upper.Set(i, upper)
		res.Lower.Set(i, lower)
		if m != 0 {
			res.Width.Set(i, (upper-lower)/m)
		}
	}

	if n < period {
		return res, fmt.Errorf("%w: bollinger(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, n)
	}
	return res, nil
}
