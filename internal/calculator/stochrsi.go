package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// StochasticRSIResult holds the smoothed %K and %D lines, scaled 0-100.
type StochasticRSIResult struct {
	K model.Series
	D model.Series
}

// StochasticRSISeries computes the Stochastic RSI: RSI normalized by its
// own rolling min/max over the same period, then smoothed twice.
// A window where the RSI never moves (max equals min) stays undefined.
func StochasticRSISeries(bars []model.OHLCV, period, smoothK, smoothD int) (StochasticRSIResult, error) {
	n := len(bars)
	res := StochasticRSIResult{K: model.NewSeries(n), D: model.NewSeries(n)}
	if period <= 0 || smoothK <= 0 || smoothD <= 0 {
		return res, fmt.Errorf("%w: stochastic rsi periods must be positive, got %d/%d/%d", model.ErrInvalidInput, period, smoothK, smoothD)
	}

	rsi, err := RSISeries(bars, period)
	if err != nil {
		return res, err
	}

	rsiMin := rollingMin(rsi, period)
	rsiMax := rollingMax(rsi, period)
	stoch := model.NewSeries(n)
	for i := 0; i < n; i++ {
		r, okR := rsi.At(i)
		lo, okLo := rsiMin.At(i)
		hi, okHi := rsiMax.At(i)
		if !okR || !okLo || !okHi || hi == lo {
			continue
		}
		stoch.Set(i, (r-lo)/(hi-lo))
	}

	k := rollingMean(stoch, smoothK)
	d := rollingMean(k, smoothD)
	for i := 0; i < n; i++ {
		if v, ok := k.At(i); ok {
			res.K.Set(i, v*100)
		}
		if v, ok := d.At(i); ok {
			res.D.Set(i, v*100)
		}
	}

	// Effective warm-up: RSI differencing, its own min/max window, then two smoothings.
	need := 2*period + smoothK + smoothD - 2
	if n < need {
		return res, fmt.Errorf("%w: stochastic rsi(%d,%d,%d) needs %d bars, have %d", model.ErrInsufficientData, period, smoothK, smoothD, need, n)
	}
	return res, nil
}
