package model

// TrendDirection is the primary trend classification.
type TrendDirection string

const (
	TrendBullish TrendDirection = "Bullish"
	TrendBearish TrendDirection = "Bearish"
	TrendNeutral TrendDirection = "Neutral"
)

// TrendStrength buckets the raw ADX value.
type TrendStrength string

const (
	StrengthWeak     TrendStrength = "Weak"
	StrengthModerate TrendStrength = "Moderate"
	StrengthStrong   TrendStrength = "Strong"
)

// RSICondition labels the RSI reading.
type RSICondition string

const (
	RSIOverbought RSICondition = "Overbought"
	RSIOversold   RSICondition = "Oversold"
	RSINeutral    RSICondition = "Neutral"
)

// Crossover labels the MACD line relative to its signal line.
type Crossover string

const (
	CrossoverBullish Crossover = "Bullish"
	CrossoverBearish Crossover = "Bearish"
)

// VolumeRegime labels current volume against its 20-period average.
type VolumeRegime string

const (
	VolumeHigh   VolumeRegime = "High"
	VolumeLow    VolumeRegime = "Low"
	VolumeNormal VolumeRegime = "Normal"
)

// TrendInfo describes direction and strength of the primary trend.
type TrendInfo struct {
	Direction   TrendDirection `json:"direction"`
	Strength    float64        `json:"strength"` // raw ADX
	Description TrendStrength  `json:"description"`
	Momentum    float64        `json:"momentum"` // 5-bar % change x100
}

// RSIInfo is the latest RSI reading with its condition label.
type RSIInfo struct {
	Value     float64      `json:"value"`
	Condition RSICondition `json:"condition"`
}

// MACDInfo is the latest MACD family reading.
type MACDInfo struct {
	Value     float64   `json:"value"`
	Signal    float64   `json:"signal"`
	Histogram float64   `json:"histogram"`
	Crossover Crossover `json:"crossover"`
}

// VolumeInfo compares current volume to its rolling average.
type VolumeInfo struct {
	Current      float64      `json:"current"`
	Average      float64      `json:"average"`
	Trend        VolumeRegime `json:"trend"`
	ChangeVsAvg  float64      `json:"change_vs_avg"` // (ratio-1) x100
}

// SupportResistance holds the classic floor-trader pivot levels.
type SupportResistance struct {
	R2    float64 `json:"r2"`
	R1    float64 `json:"r1"`
	Pivot float64 `json:"pivot"`
	S1    float64 `json:"s1"`
	S2    float64 `json:"s2"`
}

// TrendSnapshot is the point-in-time qualitative analysis of the latest bar.
// Recomputed on every request; never persisted by the core.
type TrendSnapshot struct {
	CurrentPrice      float64           `json:"current_price"`
	PriceChangePct    float64           `json:"price_change_pct"`
	Trend             TrendInfo         `json:"trend"`
	RSI               RSIInfo           `json:"rsi"`
	MACD              MACDInfo          `json:"macd"`
	Volume            VolumeInfo        `json:"volume"`
	SupportResistance SupportResistance `json:"support_resistance"`
	Volatility        float64           `json:"volatility"` // ATR as % of price
}
