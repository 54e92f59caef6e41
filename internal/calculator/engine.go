package calculator

import (
	"QuantSentinel/internal/model"
)

// Params configures every indicator period the engine computes.
type Params struct {
	MomentumPeriod  int
	RSIPeriod       int
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	BollingerPeriod int
	BollingerStdDev float64
	SMAShort        int
	SMALong         int
	EMAPeriod       int
	VolumePeriod    int
	ATRPeriod       int
	ADXPeriod       int
	MFIPeriod       int
	StochRSIPeriod  int
	StochRSISmoothK int
	StochRSISmoothD int
	IchimokuConv    int
	IchimokuBase    int
	IchimokuSpanB   int
}

// DefaultParams returns the conventional indicator settings.
func DefaultParams() Params {
	return Params{
		MomentumPeriod:  5,
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BollingerPeriod: 20,
		BollingerStdDev: 2.0,
		SMAShort:        20,
		SMALong:         50,
		EMAPeriod:       20,
		VolumePeriod:    20,
		ATRPeriod:       20,
		ADXPeriod:       14,
		MFIPeriod:       14,
		StochRSIPeriod:  14,
		StochRSISmoothK: 3,
		StochRSISmoothD: 3,
		IchimokuConv:    9,
		IchimokuBase:    26,
		IchimokuSpanB:   52,
	}
}

// IndicatorSet is the full aligned output of one engine run. Every Series
// has the input length; Failed names the indicators that could not be
// computed and why, without having blocked the others.
type IndicatorSet struct {
	Momentum    model.Series
	RSI         model.Series
	MACD        MACDResult
	Bollinger   BollingerResult
	SMA20       model.Series
	SMA50       model.Series
	EMA20       model.Series
	VolumeSMA   model.Series
	VolumeRatio model.Series
	ATR         model.Series
	ATRPct      model.Series
	ADX         model.Series
	OBV         model.Series
	MFI         model.Series
	StochRSI    StochasticRSIResult
	Ichimoku    IchimokuResult
	Pivots      PivotResult

	Failed map[string]error
}

// ComputeAll runs every indicator over the bar series. One indicator
// failing (typically a series shorter than its window) is recorded in
// Failed and does not abort the rest. An empty input returns an empty
// set with no failures; unordered timestamps are rejected outright.
func ComputeAll(bars []model.OHLCV, p Params) (*IndicatorSet, error) {
	if err := model.ValidateBars(bars); err != nil {
		return nil, err
	}

	set := &IndicatorSet{Failed: make(map[string]error)}
	if len(bars) == 0 {
		return set, nil
	}

	record := func(name string, err error) {
		if err != nil {
			set.Failed[name] = err
		}
	}

	var err error
	set.Momentum, err = MomentumSeries(bars, p.MomentumPeriod)
	record("momentum", err)
	set.RSI, err = RSISeries(bars, p.RSIPeriod)
	record("rsi", err)
	set.MACD, err = MACDSeries(bars, p.MACDFast, p.MACDSlow, p.MACDSignal)
	record("macd", err)
	set.Bollinger, err = BollingerSeries(bars, p.BollingerPeriod, p.BollingerStdDev)
	record("bollinger", err)
	set.SMA20, err = SMASeries(bars, p.SMAShort)
	record("sma_short", err)
	set.SMA50, err = SMASeries(bars, p.SMALong)
	record("sma_long", err)
	set.EMA20, err = EMASeries(bars, p.EMAPeriod)
	record("ema", err)
	set.VolumeSMA, err = VolumeSMASeries(bars, p.VolumePeriod)
	record("volume_sma", err)
	set.VolumeRatio = VolumeRatioSeries(bars, set.VolumeSMA)
	set.ATR, err = ATRSeries(bars, p.ATRPeriod)
	record("atr", err)
	set.ATRPct = ATRPctSeries(bars, set.ATR)
	set.ADX, err = ADXSeries(bars, p.ADXPeriod)
	record("adx", err)
	set.OBV = OBVSeries(bars)
	set.MFI, err = MFISeries(bars, p.MFIPeriod)
	record("mfi", err)
	set.StochRSI, err = StochasticRSISeries(bars, p.StochRSIPeriod, p.StochRSISmoothK, p.StochRSISmoothD)
	record("stoch_rsi", err)
	set.Ichimoku, err = IchimokuSeries(bars, p.IchimokuConv, p.IchimokuBase, p.IchimokuSpanB)
	record("ichimoku", err)
	set.Pivots = PivotSeries(bars)

	return set, nil
}
