package calculator

import (
	"fmt"

	"QuantSentinel/internal/model"
)

// IchimokuResult holds the five cloud components, aligned to the input bars.
//
// SpanA and SpanB are plotted shifted forward by the base period: entry i
// holds the midpoint computed basePeriod bars earlier. Lagging is the close
// shifted backward, so entry i exposes the close from basePeriod bars in
// the future; it exists only where that future bar exists and must never
// feed a live classification of the current bar.
type IchimokuResult struct {
	Conversion model.Series
	Base       model.Series
	SpanA      model.Series
	SpanB      model.Series
	Lagging    model.Series
}

// IchimokuSeries computes the Ichimoku Cloud with the given periods
// (conventionally 9/26/52).
func IchimokuSeries(bars []model.OHLCV, conversionPeriod, basePeriod, spanBPeriod int) (IchimokuResult, error) {
	n := len(bars)
	res := IchimokuResult{
		Conversion: model.NewSeries(n),
		Base:       model.NewSeries(n),
		SpanA:      model.NewSeries(n),
		SpanB:      model.NewSeries(n),
		Lagging:    model.NewSeries(n),
	}
	if conversionPeriod <= 0 || basePeriod <= 0 || spanBPeriod <= 0 {
		return res, fmt.Errorf("%w: ichimoku periods must be positive, got %d/%d/%d", model.ErrInvalidInput, conversionPeriod, basePeriod, spanBPeriod)
	}

	highs := fullSeries(extractHighs(bars))
	lows := fullSeries(extractLows(bars))
	res.Conversion = midpointSeries(rollingMax(highs, conversionPeriod), rollingMin(lows, conversionPeriod))
	res.Base = midpointSeries(rollingMax(highs, basePeriod), rollingMin(lows, basePeriod))
	spanBRaw := midpointSeries(rollingMax(highs, spanBPeriod), rollingMin(lows, spanBPeriod))

	for i := basePeriod; i < n; i++ {
		c, okC := res.Conversion.At(i - basePeriod)
		b, okB := res.Base.At(i - basePeriod)
		if okC && okB {
			res.SpanA.Set(i, (c+b)/2)
		}
		if v, ok := spanBRaw.At(i - basePeriod); ok {
			res.SpanB.Set(i, v)
		}
	}

	for i := 0; i+basePeriod < n; i++ {
		res.Lagging.Set(i, bars[i+basePeriod].Close)
	}

	if n < spanBPeriod+basePeriod {
		return res, fmt.Errorf("%w: ichimoku(%d/%d/%d) needs %d bars, have %d",
			model.ErrInsufficientData, conversionPeriod, basePeriod, spanBPeriod, spanBPeriod+basePeriod, n)
	}
	return res, nil
}

func midpointSeries(hi, lo model.Series) model.Series {
	out := model.NewSeries(hi.Len())
	for i := 0; i < hi.Len(); i++ {
		h, okH := hi.At(i)
		l, okL := lo.At(i)
		if okH && okL {
			out.Set(i, (h+l)/2)
		}
	}
	return out
}
