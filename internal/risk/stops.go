package risk

import (
	"fmt"
	"math"

	"QuantSentinel/internal/calculator"
	"QuantSentinel/internal/model"
)

// OptimizeStops computes ATR-based stop levels per bar: long stops a
// multiple of ATR below the close, short stops the same distance above.
func OptimizeStops(bars []model.OHLCV, atrMultiple float64, lookback int) (*model.StopLevels, error) {
	if atrMultiple <= 0 {
		return nil, fmt.Errorf("%w: atr multiple must be positive, got %g", model.ErrInvalidInput, atrMultiple)
	}
	atr, err := calculator.ATRSeries(bars, lookback)
	if err != nil {
		return nil, err
	}

	levels := &model.StopLevels{
		LongStop:  model.NewSeries(len(bars)),
		ShortStop: model.NewSeries(len(bars)),
		ATR:       atr,
	}
	for i := range bars {
		a, ok := atr.At(i)
		if !ok {
			continue
		}
		dist := a * atrMultiple
		levels.LongStop.Set(i, bars[i].Close-dist)
		levels.ShortStop.Set(i, bars[i].Close+dist)
	}
	return levels, nil
}

// AnnualizedVolatility estimates annualized volatility from daily returns,
// for feeding the Monte Carlo simulation when no override is configured.
func AnnualizedVolatility(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: volatility estimate needs at least 2 returns, have %d", model.ErrInsufficientData, len(returns))
	}
	mean := meanOf(returns)
	daily := sampleStd(returns, mean)
	return daily * math.Sqrt(tradingDaysPerYear), nil
}
