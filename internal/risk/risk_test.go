package risk

import (
	"errors"
	"math"
	"testing"
	"time"

	"QuantSentinel/internal/model"
)

// rangeBars yields three bars whose true ranges are 2, 2 and 4, so the
// 2-bar ATR is exactly 2 then 3.
func rangeBars() []model.OHLCV {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.OHLCV{
		{Time: t0, High: 10, Low: 8, Close: 10},
		{Time: t0.AddDate(0, 0, 1), High: 11, Low: 9, Close: 10},
		{Time: t0.AddDate(0, 0, 2), High: 14, Low: 10, Close: 11},
	}
}

func TestPositionSize_HandCalculated(t *testing.T) {
	// 2% of 10000 = 200 at risk; 5 per share of stop distance -> 40 shares.
	plan, err := PositionSize(10000, 2, 50, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.RiskAmount != 200 {
		t.Errorf("RiskAmount = %.2f, want 200", plan.RiskAmount)
	}
	if plan.RiskPerShare != 5 {
		t.Errorf("RiskPerShare = %.2f, want 5", plan.RiskPerShare)
	}
	if plan.PositionSize != 40 {
		t.Errorf("PositionSize = %.2f, want 40", plan.PositionSize)
	}
	if plan.TotalValue != 2000 {
		t.Errorf("TotalValue = %.2f, want 2000", plan.TotalValue)
	}
}

func TestPositionSize_ShortSide(t *testing.T) {
	// Stop above entry: the distance is absolute, sizing works the same.
	plan, err := PositionSize(10000, 2, 45, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PositionSize != 40 {
		t.Errorf("PositionSize = %.2f, want 40", plan.PositionSize)
	}
}

func TestPositionSize_Degenerate(t *testing.T) {
	if _, err := PositionSize(10000, 2, 50, 50); !errors.Is(err, model.ErrNumericDegeneracy) {
		t.Fatalf("expected ErrNumericDegeneracy, got %v", err)
	}
}

func TestPositionSize_InvalidInputs(t *testing.T) {
	cases := []struct {
		name                          string
		account, pct, entry, stop     float64
	}{
		{"zero account", 0, 2, 50, 45},
		{"negative risk", 10000, -1, 50, 45},
		{"risk above 100", 10000, 101, 50, 45},
		{"zero entry", 10000, 2, 0, 45},
	}
	for _, tc := range cases {
		if _, err := PositionSize(tc.account, tc.pct, tc.entry, tc.stop); !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestVaR_HandCalculated(t *testing.T) {
	returns := []float64{-0.05, -0.02, -0.01, 0, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06}

	m, err := VaR(returns, 0.90, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10th percentile with interpolation: rank 0.9 between -0.05 and -0.02.
	if math.Abs(m.HistoricalVaR-0.023) > 1e-12 {
		t.Errorf("HistoricalVaR = %.6f, want 0.023", m.HistoricalVaR)
	}
	// Only -0.05 sits at or below the threshold.
	if math.Abs(m.CVaR-0.05) > 1e-12 {
		t.Errorf("CVaR = %.6f, want 0.05", m.CVaR)
	}
	// mean 0.013, sample std 0.0340098, z(0.10) = -1.2815516.
	if math.Abs(m.ParametricVaR-0.0305853) > 1e-6 {
		t.Errorf("ParametricVaR = %.7f, want 0.0305853", m.ParametricVaR)
	}
	if m.CVaR < m.HistoricalVaR {
		t.Errorf("CVaR %.6f must be at least the historical VaR %.6f", m.CVaR, m.HistoricalVaR)
	}
}

func TestVaR_HorizonScaling(t *testing.T) {
	returns := []float64{-0.05, -0.02, -0.01, 0, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06}

	one, err := VaR(returns, 0.90, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	four, err := VaR(returns, 0.90, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Square-root-of-time: a 4-day parametric VaR is twice the 1-day figure.
	if math.Abs(four.ParametricVaR-2*one.ParametricVaR) > 1e-12 {
		t.Errorf("4-day parametric VaR = %.6f, want %.6f", four.ParametricVaR, 2*one.ParametricVaR)
	}
	if four.HistoricalVaR != one.HistoricalVaR {
		t.Errorf("historical VaR is a plain percentile, got %.6f vs %.6f", four.HistoricalVaR, one.HistoricalVaR)
	}
}

func TestVaR_InputValidation(t *testing.T) {
	returns := []float64{-0.01, 0.02, 0.01}
	if _, err := VaR(returns, 0, 1); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("confidence 0: expected ErrInvalidInput, got %v", err)
	}
	if _, err := VaR(returns, 1, 1); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("confidence 1: expected ErrInvalidInput, got %v", err)
	}
	if _, err := VaR(returns, 0.95, 0); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("zero horizon: expected ErrInvalidInput, got %v", err)
	}
	if _, err := VaR([]float64{0.01}, 0.95, 1); !errors.Is(err, model.ErrInsufficientData) {
		t.Errorf("one return: expected ErrInsufficientData, got %v", err)
	}
}

func TestMonteCarlo_Deterministic(t *testing.T) {
	p := SimulationParams{
		Price:            100,
		AnnualVolatility: 0.25,
		Days:             20,
		Simulations:      200,
		Confidence:       0.95,
		Seed:             42,
		Workers:          4,
	}

	a, err := MonteCarlo(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MonteCarlo(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ExpectedPrice != b.ExpectedPrice || a.VaRPrice != b.VaRPrice || a.MaxPrice != b.MaxPrice || a.MinPrice != b.MinPrice {
		t.Error("same seed must reproduce identical summary statistics")
	}
}

func TestMonteCarlo_WorkerCountInvariance(t *testing.T) {
	base := SimulationParams{
		Price:            100,
		AnnualVolatility: 0.25,
		Days:             20,
		Simulations:      200,
		Confidence:       0.95,
		Seed:             7,
	}

	serial := base
	serial.Workers = 1
	parallel := base
	parallel.Workers = 8

	a, err := MonteCarlo(serial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MonteCarlo(parallel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ExpectedPrice != b.ExpectedPrice || a.VaRPrice != b.VaRPrice {
		t.Error("results must not depend on the worker count")
	}
	for i := range a.Paths {
		for d := range a.Paths[i] {
			if a.Paths[i][d] != b.Paths[i][d] {
				t.Fatalf("path %d diverges at day %d", i, d)
			}
		}
	}
}

func TestMonteCarlo_ShapeAndBounds(t *testing.T) {
	p := SimulationParams{
		Price:            100,
		AnnualVolatility: 0.25,
		Days:             15,
		Simulations:      128,
		Confidence:       0.95,
		Seed:             1,
		Workers:          2,
	}
	res, err := MonteCarlo(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Paths) != p.Simulations {
		t.Fatalf("got %d paths, want %d", len(res.Paths), p.Simulations)
	}
	for i, path := range res.Paths {
		if len(path) != p.Days {
			t.Fatalf("path %d has %d days, want %d", i, len(path), p.Days)
		}
		for d, price := range path {
			if price <= 0 {
				t.Fatalf("path %d day %d: non-positive price %.6f", i, d, price)
			}
		}
	}
	if !(res.MinPrice <= res.VaRPrice && res.VaRPrice <= res.MaxPrice) {
		t.Errorf("ordering violated: min=%.4f var=%.4f max=%.4f", res.MinPrice, res.VaRPrice, res.MaxPrice)
	}
	if res.VaRPrice >= res.ExpectedPrice {
		t.Errorf("5th-percentile price %.4f should sit below the mean %.4f", res.VaRPrice, res.ExpectedPrice)
	}
}

func TestMonteCarlo_NegligibleVolatility(t *testing.T) {
	p := SimulationParams{
		Price:            100,
		AnnualVolatility: 1e-9,
		Days:             10,
		Simulations:      32,
		Confidence:       0.95,
		Seed:             3,
		Workers:          1,
	}
	res, err := MonteCarlo(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.ExpectedPrice-100) > 1e-3 {
		t.Errorf("ExpectedPrice = %.6f, want ~100 at near-zero volatility", res.ExpectedPrice)
	}
}

func TestMonteCarlo_ParameterValidation(t *testing.T) {
	valid := SimulationParams{
		Price:            100,
		AnnualVolatility: 0.25,
		Days:             10,
		Simulations:      32,
		Confidence:       0.95,
		Seed:             1,
	}

	cases := []struct {
		name   string
		mutate func(*SimulationParams)
	}{
		{"zero price", func(p *SimulationParams) { p.Price = 0 }},
		{"negative volatility", func(p *SimulationParams) { p.AnnualVolatility = -0.1 }},
		{"zero days", func(p *SimulationParams) { p.Days = 0 }},
		{"zero simulations", func(p *SimulationParams) { p.Simulations = 0 }},
		{"confidence 1", func(p *SimulationParams) { p.Confidence = 1 }},
	}
	for _, tc := range cases {
		p := valid
		tc.mutate(&p)
		if _, err := MonteCarlo(p); !errors.Is(err, model.ErrSimulation) {
			t.Errorf("%s: expected ErrSimulation, got %v", tc.name, err)
		}
	}
}

func TestMonteCarlo_MoreSimulationsNarrowEstimate(t *testing.T) {
	// The mean terminal price converges: its spread across seeds shrinks
	// as the simulation count grows.
	spread := func(sims int) float64 {
		var means []float64
		for seed := int64(1); seed <= 8; seed++ {
			res, err := MonteCarlo(SimulationParams{
				Price:            100,
				AnnualVolatility: 0.4,
				Days:             10,
				Simulations:      sims,
				Confidence:       0.95,
				Seed:             seed,
				Workers:          4,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			means = append(means, res.ExpectedPrice)
		}
		m := meanOf(means)
		return sampleStd(means, m)
	}

	coarse := spread(64)
	fine := spread(1024)
	if fine >= coarse {
		t.Errorf("estimate spread should shrink with more simulations: %d sims -> %.6f, %d sims -> %.6f", 64, coarse, 1024, fine)
	}
}

func TestOptimizeStops(t *testing.T) {
	bars := rangeBars()
	levels, err := OptimizeStops(bars, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := levels.LongStop.At(0); ok {
		t.Error("stops should be undefined inside the ATR warm-up")
	}
	// ATR(2) idx 1 = 2: long = 10 - 4, short = 10 + 4.
	long1, ok := levels.LongStop.At(1)
	if !ok || long1 != 6 {
		t.Errorf("long stop idx 1 = %.2f (defined=%v), want 6", long1, ok)
	}
	short1, _ := levels.ShortStop.At(1)
	if short1 != 14 {
		t.Errorf("short stop idx 1 = %.2f, want 14", short1)
	}
	// ATR(2) idx 2 = 3: long = 11 - 6, short = 11 + 6.
	long2, _ := levels.LongStop.At(2)
	if long2 != 5 {
		t.Errorf("long stop idx 2 = %.2f, want 5", long2)
	}
	short2, _ := levels.ShortStop.At(2)
	if short2 != 17 {
		t.Errorf("short stop idx 2 = %.2f, want 17", short2)
	}
}

func TestOptimizeStops_InvalidMultiple(t *testing.T) {
	if _, err := OptimizeStops(rangeBars(), 0, 2); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Daily std of {0.01, 0.03} is sqrt(0.0002); annualized by sqrt(252).
	vol, err := AnnualizedVolatility([]float64{0.01, 0.03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt(0.0002) * math.Sqrt(252)
	if math.Abs(vol-want) > 1e-12 {
		t.Errorf("vol = %.6f, want %.6f", vol, want)
	}

	if _, err := AnnualizedVolatility([]float64{0.01}); !errors.Is(err, model.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
