package model

// RiskMetrics holds Value-at-Risk estimates for one confidence level
// and horizon. All values are positive magnitudes in return space.
type RiskMetrics struct {
	ParametricVaR float64 `json:"parametric_var"`
	HistoricalVaR float64 `json:"historical_var"`
	CVaR          float64 `json:"cvar"`
}

// SimulationResult summarizes a Monte Carlo price simulation.
// Paths is simulations x days; row i is one full simulated price path.
type SimulationResult struct {
	ExpectedPrice float64     `json:"expected_price"`
	VaRPrice      float64     `json:"var_price"`
	MaxPrice      float64     `json:"max_price"`
	MinPrice      float64     `json:"min_price"`
	Paths         [][]float64 `json:"price_paths"`
}

// PositionPlan is a risk-based position size recommendation.
type PositionPlan struct {
	PositionSize float64 `json:"position_size"`
	TotalValue   float64 `json:"total_position_value"`
	RiskAmount   float64 `json:"risk_amount"`
	RiskPerShare float64 `json:"risk_per_share"`
}

// StopLevels holds per-bar ATR-based stop prices, aligned to the input bars.
type StopLevels struct {
	LongStop  Series
	ShortStop Series
	ATR       Series
}
