package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// FibonacciRatios are the retracement ratios, in ascending order.
var FibonacciRatios = []float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1.0}

// FibLevel is one retracement level: a ratio and its interpolated price.
type FibLevel struct {
	Ratio float64
	Price float64
}

// FibonacciRetracement interpolates the seven standard retracement levels
// between low and high. Prices are strictly increasing in ratio order.
func FibonacciRetracement(high, low float64) ([]FibLevel, error) {
	if high <= low {
		return nil, fmt.Errorf("%w: fibonacci high %g must exceed low %g", model.ErrInvalidInput, high, low)
	}
	diff := high - low
	out := make([]FibLevel, len(FibonacciRatios))
	for i, r := range FibonacciRatios {
		out[i] = FibLevel{Ratio: r, Price: low + r*diff}
	}
	return out, nil
}

// PivotResult holds the per-bar classic floor-trader pivot levels.
type PivotResult struct {
	Pivot model.Series
	R1    model.Series
	R2    model.Series
	S1    model.Series
	S2    model.Series
}

// PivotSeries computes classic pivot points from each bar's own
// high, low and close. Defined for every bar.
func PivotSeries(bars []model.OHLCV) PivotResult {
	n := len(bars)
	res := PivotResult{
		Pivot: model.NewSeries(n),
		R1:    model.NewSeries(n),
		R2:    model.NewSeries(n),
		S1:    model.NewSeries(n),
		S2:    model.NewSeries(n),
	}
	for i, b := range bars {
		pp := (b.High + b.Low + b.Close) / 3
		res.Pivot.Set(i, pp)
		res.R1.Set(i, 2*pp-b.Low)
		res.S1.Set(i, 2*pp-b.High)
		res.R2.Set(i, pp+(b.High-b.Low))
		res.S2.Set(i, pp-(b.High-b.Low))
	}
	return res
}

// LevelsAt extracts the pivot levels at index i as a snapshot value.
func (r PivotResult) LevelsAt(i int) (model.SupportResistance, bool) {
	pp, ok := r.Pivot.At(i)
	if !ok {
		return model.SupportResistance{}, false
	}
	r1, _ := r.R1.At(i)
	r2, _ := r.R2.At(i)
	s1, _ := r.S1.At(i)
	s2, _ := r.S2.At(i)
	return model.SupportResistance{R2: r2, R1: r1, Pivot: pp, S1: s1, S2: s2}, true
}
