package risk

import (
	"fmt"
	"math"
	"sort"

	"QuantSentinel/internal/model"
)

// VaR estimates Value-at-Risk over the return series at the given
// confidence level and horizon in days, using both the parametric
// (normal) and historical methods, plus the conditional VaR.
func VaR(returns []float64, confidence float64, horizonDays int) (*model.RiskMetrics, error) {
	if len(returns) < 2 {
		return nil, fmt.Errorf("%w: var needs at least 2 returns, have %d", model.ErrInsufficientData, len(returns))
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence level must be in (0,1), got %g", model.ErrInvalidInput, confidence)
	}
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d days", model.ErrInvalidInput, horizonDays)
	}

	mean := meanOf(returns)
	std := sampleStd(returns, mean)

	z := normPPF(1 - confidence)
	parametric := -(mean + z*std) * math.Sqrt(float64(horizonDays))

	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	historical := -percentile(sorted, (1-confidence)*100)

	// Expected shortfall: mean of the returns at or below the VaR threshold.
	// The sample minimum always qualifies, so the tail is never empty.
	threshold := -historical
	tailSum, tailN := 0.0, 0
	for _, r := range returns {
		if r <= threshold {
			tailSum += r
			tailN++
		}
	}
	cvar := -tailSum / float64(tailN)

	return &model.RiskMetrics{
		ParametricVaR: parametric,
		HistoricalVaR: historical,
		CVaR:          cvar,
	}, nil
}

func meanOf(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the n-1 normalized standard deviation.
func sampleStd(xs []float64, mean float64) float64 {
	sumSq := 0.0
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)-1))
}

// normPPF is the standard normal inverse CDF.
func normPPF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// percentile computes the pct-th percentile of a sorted sample with linear
// interpolation between closest ranks.
func percentile(sorted []float64, pct float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		return sorted[0]
	}
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
