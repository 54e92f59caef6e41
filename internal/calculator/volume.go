package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// OBVSeries computes On-Balance Volume: a running total seeded with the
// first bar's volume, adding volume on up closes and subtracting on down
// closes. Defined for every bar.
func OBVSeries(bars []model.OHLCV) model.Series {
	out := model.NewSeries(len(bars))
	if len(bars) == 0 {
		return out
	}
	obv := bars[0].Volume
	out.Set(0, obv)
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv -= bars[i].Volume
		}
		out.Set(i, obv)
	}
	return out
}

// MFISeries computes the Money Flow Index over the period. Raw money flow
// is typical price times volume, classified positive or negative by the
// typical price's direction against the prior bar.
//
// A zero negative-flow sum with positive flow present saturates to 100,
// mirroring the RSI fix; a window with no flow at all stays undefined.
func MFISeries(bars []model.OHLCV, period int) (model.Series, error) {
	n := len(bars)
	out := model.NewSeries(n)
	if period <= 0 {
		return out, fmt.Errorf("%w: mfi period must be positive, got %d", model.ErrInvalidInput, period)
	}

	typical := make([]float64, n)
	for i, b := range bars {
		typical[i] = (b.High + b.Low + b.Close) / 3
	}

	positive := model.NewSeries(n)
	negative := model.NewSeries(n)
	if n > 0 {
		// The first bar has no prior typical price; it contributes no flow.
		positive.Set(0, 0)
		negative.Set(0, 0)
	}
	for i := 1; i < n; i++ {
		flow := typical[i] * bars[i].Volume
		switch {
		case typical[i] > typical[i-1]:
			positive.Set(i, flow)
			negative.Set(i, 0)
		case typical[i] < typical[i-1]:
			positive.Set(i, 0)
			negative.Set(i, flow)
		default:
			positive.Set(i, 0)
			negative.Set(i, 0)
		}
	}

	posSum := rollingSum(positive, period)
	negSum := rollingSum(negative, period)
	for i := 0; i < n; i++ {
		pos, okP := posSum.At(i)
		neg, okN := negSum.At(i)
		if !okP || !okN {
			continue
		}
		if neg == 0 {
			if pos > 0 {
				out.Set(i, 100.0)
			}
			continue // no flow either way: undefined
		}
		ratio := pos / neg
		out.Set(i, 100.0-100.0/(1.0+ratio))
	}

	if n < period {
		return out, fmt.Errorf("%w: mfi(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, n)
	}
	return out, nil
}

// VolumeSMASeries computes the rolling mean of volume over the period.
func VolumeSMASeries(bars []model.OHLCV, period int) (model.Series, error) {
	if period <= 0 {
		return model.NewSeries(len(bars)), fmt.Errorf("%w: volume sma period must be positive, got %d", model.ErrInvalidInput, period)
	}
	out := rollingMean(fullSeries(extractVolumes(bars)), period)
	if len(bars) < period {
		return out, fmt.Errorf("%w: volume sma(%d) needs %d bars, have %d", model.ErrInsufficientData, period, period, len(bars))
	}
	return out, nil
}

// VolumeRatioSeries divides each bar's volume by its rolling average.
func VolumeRatioSeries(bars []model.OHLCV, volumeSMA model.Series) model.Series {
	out := model.NewSeries(len(bars))
	for i := range bars {
		avg, ok := volumeSMA.At(i)
		if !ok || avg == 0 {
			continue
		}
		out.Set(i, bars[i].Volume/avg)
	}
	return out
}
