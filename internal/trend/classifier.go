// Package trend turns the latest row of indicator output into a
// point-in-time qualitative snapshot. Pure: no state survives a call.
package trend

import (
	"fmt"

	"QuantSentinel/internal/calculator"
	"QuantSentinel/internal/model"
)

// Classify builds a TrendSnapshot from the most recent bar and the engine
// output. Every consumed indicator must be defined at the last index;
// an undefined value is a hard precondition failure, never a silent zero.
func Classify(bars []model.OHLCV, set *calculator.IndicatorSet) (*model.TrendSnapshot, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("%w: classification needs at least 2 bars, have %d", model.ErrInsufficientData, len(bars))
	}
	last := len(bars) - 1
	current := bars[last].Close
	prev := bars[last-1].Close

	sma20, err := requireAt(set.SMA20, last, "sma_20")
	if err != nil {
		return nil, err
	}
	sma50, err := requireAt(set.SMA50, last, "sma_50")
	if err != nil {
		return nil, err
	}
	adx, err := requireAt(set.ADX, last, "adx")
	if err != nil {
		return nil, err
	}
	momentum, err := requireAt(set.Momentum, last, "momentum")
	if err != nil {
		return nil, err
	}
	rsi, err := requireAt(set.RSI, last, "rsi")
	if err != nil {
		return nil, err
	}
	macd, err := requireAt(set.MACD.MACD, last, "macd")
	if err != nil {
		return nil, err
	}
	macdSignal, err := requireAt(set.MACD.Signal, last, "macd_signal")
	if err != nil {
		return nil, err
	}
	macdHist, err := requireAt(set.MACD.Histogram, last, "macd_histogram")
	if err != nil {
		return nil, err
	}
	volumeAvg, err := requireAt(set.VolumeSMA, last, "volume_sma")
	if err != nil {
		return nil, err
	}
	volumeRatio, err := requireAt(set.VolumeRatio, last, "volume_ratio")
	if err != nil {
		return nil, err
	}
	atrPct, err := requireAt(set.ATRPct, last, "atr_pct")
	if err != nil {
		return nil, err
	}

	crossover, ok := set.MACD.CrossoverAt(last)
	if !ok {
		return nil, fmt.Errorf("%w: macd crossover undefined at latest bar", model.ErrInsufficientData)
	}
	levels, ok := set.Pivots.LevelsAt(last)
	if !ok {
		return nil, fmt.Errorf("%w: pivot levels undefined at latest bar", model.ErrInsufficientData)
	}

	snap := &model.TrendSnapshot{
		CurrentPrice:   current,
		PriceChangePct: (current - prev) / prev * 100,
		Trend: model.TrendInfo{
			Direction:   direction(current, sma20, sma50),
			Strength:    adx,
			Description: calculator.StrengthBucket(adx),
			Momentum:    momentum * 100,
		},
		RSI: model.RSIInfo{
			Value:     rsi,
			Condition: rsiCondition(rsi),
		},
		MACD: model.MACDInfo{
			Value:     macd,
			Signal:    macdSignal,
			Histogram: macdHist,
			Crossover: crossover,
		},
		Volume: model.VolumeInfo{
			Current:     bars[last].Volume,
			Average:     volumeAvg,
			Trend:       volumeRegime(volumeRatio),
			ChangeVsAvg: (volumeRatio - 1) * 100,
		},
		SupportResistance: levels,
		Volatility:        atrPct,
	}
	return snap, nil
}

func requireAt(s model.Series, i int, name string) (float64, error) {
	v, ok := s.At(i)
	if !ok {
		return 0, fmt.Errorf("%w: %s undefined at latest bar", model.ErrInsufficientData, name)
	}
	return v, nil
}

// direction labels the primary trend from the close against the short and
// long moving averages.
func direction(close, sma20, sma50 float64) model.TrendDirection {
	switch {
	case close > sma20 && sma20 > sma50:
		return model.TrendBullish
	case close < sma20 && sma20 < sma50:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}

func rsiCondition(rsi float64) model.RSICondition {
	switch {
	case rsi > 70:
		return model.RSIOverbought
	case rsi < 30:
		return model.RSIOversold
	default:
		return model.RSINeutral
	}
}

func volumeRegime(ratio float64) model.VolumeRegime {
	switch {
	case ratio > 1.5:
		return model.VolumeHigh
	case ratio < 0.5:
		return model.VolumeLow
	default:
		return model.VolumeNormal
	}
}
