package calculator

import (
	"fmt"
	"math"

	"QuantSentinel/internal/model"
)

// ADXSeries computes the Average Directional Index on the standard 0-100
// scale using Wilder's smoothing of directional movement and true range.
// The first reading lands at index 2*period-1.
func ADXSeries(bars []model.OHLCV, period int) (model.Series, error) {
	n := len(bars)
	out := model.NewSeries(n)
	if period <= 0 {
		return out, fmt.Errorf("%w: adx period must be positive, got %d", model.ErrInvalidInput, period)
	}
	if n < 2*period {
		return out, fmt.Errorf("%w: adx(%d) needs %d bars, have %d", model.ErrInsufficientData, period, 2*period, n)
	}

	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		prev := bars[i-1]
		cur := bars[i]
		tr[i] = math.Max(cur.High-cur.Low, math.Max(math.Abs(cur.High-prev.Close), math.Abs(cur.Low-prev.Close)))
		up := cur.High - prev.High
		down := prev.Low - cur.Low
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	// Wilder smoothing: seed with a plain sum over the first period moves,
	// then smoothed = prev - prev/period + value.
	var smTR, smPlus, smMinus float64
	for i := 1; i <= period; i++ {
		smTR += tr[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := make([]float64, n)
	p := float64(period)
	for i := period; i < n; i++ {
		if i > period {
			smTR = smTR - smTR/p + tr[i]
			smPlus = smPlus - smPlus/p + plusDM[i]
			smMinus = smMinus - smMinus/p + minusDM[i]
		}
		if smTR == 0 {
			continue
		}
		plusDI := 100 * smPlus / smTR
		minusDI := 100 * smMinus / smTR
		sum := plusDI + minusDI
		if sum == 0 {
			continue
		}
		dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
	}

	// ADX seed: mean of the first period DX readings, then Wilder smoothing.
	var adx float64
	for i := period; i < 2*period; i++ {
		adx += dx[i]
	}
	adx /= p
	out.Set(2*period-1, adx)
	for i := 2 * period; i < n; i++ {
		adx = (adx*(p-1) + dx[i]) / p
		out.Set(i, adx)
	}
	return out, nil
}

// StrengthBucket maps a raw ADX value onto the qualitative scale:
// below 25 Weak, 25 to 50 Moderate, 50 and above Strong.
func StrengthBucket(adx float64) model.TrendStrength {
	switch {
	case adx >= 50:
		return model.StrengthStrong
	case adx >= 25:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}
