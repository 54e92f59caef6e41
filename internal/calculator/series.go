package calculator

import (
	"math"

	"QuantSentinel/internal/model"
)

// Column extraction helpers. Every indicator works over plain float64
// slices pulled from the bar series once.

func extractCloses(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func extractHighs(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

func extractLows(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

func extractVolumes(bars []model.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

// fullSeries wraps a plain slice as a Series with every entry defined.
func fullSeries(vals []float64) model.Series {
	s := model.NewSeries(len(vals))
	for i, v := range vals {
		s.Set(i, v)
	}
	return s
}

// rollingMean computes the trailing mean over period entries of src.
// An output entry is defined only when its whole window is defined.
func rollingMean(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	for i := period - 1; i < src.Len(); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			v, defined := src.At(j)
			if !defined {
				ok = false
				break
			}
			sum += v
		}
		if ok {
			out.Set(i, sum/float64(period))
		}
	}
	return out
}

// rollingSum computes the trailing sum over period entries of src.
func rollingSum(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	for i := period - 1; i < src.Len(); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			v, defined := src.At(j)
			if !defined {
				ok = false
				break
			}
			sum += v
		}
		if ok {
			out.Set(i, sum)
		}
	}
	return out
}

// rollingStd computes the trailing population standard deviation.
func rollingStd(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	mean := rollingMean(src, period)
	for i := period - 1; i < src.Len(); i++ {
		m, ok := mean.At(i)
		if !ok {
			continue
		}
		sumSq := 0.0
		defined := true
		for j := i - period + 1; j <= i; j++ {
			v, okV := src.At(j)
			if !okV {
				defined = false
				break
			}
			d := v - m
			sumSq += d * d
		}
		if defined {
			out.Set(i, math.Sqrt(sumSq/float64(period)))
		}
	}
	return out
}

// rollingMax computes the trailing maximum over period entries of src.
func rollingMax(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	for i := period - 1; i < src.Len(); i++ {
		best := math.Inf(-1)
		ok := true
		for j := i - period + 1; j <= i; j++ {
			v, defined := src.At(j)
			if !defined {
				ok = false
				break
			}
			if v > best {
				best = v
			}
		}
		if ok {
			out.Set(i, best)
		}
	}
	return out
}

// rollingMin computes the trailing minimum over period entries of src.
func rollingMin(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	for i := period - 1; i < src.Len(); i++ {
		best := math.Inf(1)
		ok := true
		for j := i - period + 1; j <= i; j++ {
			v, defined := src.At(j)
			if !defined {
				ok = false
				break
			}
			if v < best {
				best = v
			}
		}
		if ok {
			out.Set(i, best)
		}
	}
	return out
}

// emaSeries computes an exponential moving average seeded with the simple
// mean of the first period defined entries. The first defined output sits
// period-1 entries after the first defined input.
func emaSeries(src model.Series, period int) model.Series {
	out := model.NewSeries(src.Len())
	if period <= 0 {
		return out
	}
	first := src.FirstDefined()
	if first < 0 || first+period > src.Len() {
		return out
	}

	sum := 0.0
	for j := first; j < first+period; j++ {
		v, ok := src.At(j)
		if !ok {
			return out
		}
		sum += v
	}
	seed := sum / float64(period)
	out.Set(first+period-1, seed)

	k := 2.0 / (float64(period) + 1.0)
	prev := seed
	for i := first + period; i < src.Len(); i++ {
		v, ok := src.At(i)
		if !ok {
			break
		}
		prev = v*k + prev*(1-k)
		out.Set(i, prev)
	}
	return out
}
