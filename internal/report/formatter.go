// Package report renders analysis output as plain text for the CLI and
// for recording alongside structured rows.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"QuantSentinel/internal/model"
)

// FormatAnalysis renders the trend snapshot as a readable report.
func FormatAnalysis(symbol string, snap *model.TrendSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Technical Analysis | %s | %s\n\n", symbol, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Price: %.2f (%+.2f%%)\n", snap.CurrentPrice, snap.PriceChangePct))
	b.WriteString(fmt.Sprintf("Trend: %s, %s (ADX %.1f), momentum %+.1f%%\n",
		snap.Trend.Direction, snap.Trend.Description, snap.Trend.Strength, snap.Trend.Momentum))
	b.WriteString(fmt.Sprintf("RSI: %.1f (%s)\n", snap.RSI.Value, snap.RSI.Condition))
	b.WriteString(fmt.Sprintf("MACD: %.3f signal %.3f hist %+.3f (%s)\n",
		snap.MACD.Value, snap.MACD.Signal, snap.MACD.Histogram, snap.MACD.Crossover))
	b.WriteString(fmt.Sprintf("Volume: %s vs avg %s — %s (%+.1f%% vs avg)\n",
		humanize.Commaf(snap.Volume.Current), humanize.Commaf(snap.Volume.Average),
		snap.Volume.Trend, snap.Volume.ChangeVsAvg))
	b.WriteString(fmt.Sprintf("Volatility: %.2f%% of price (ATR)\n\n", snap.Volatility))

	sr := snap.SupportResistance
	b.WriteString("Levels:\n")
	b.WriteString(fmt.Sprintf("  R2 %.2f | R1 %.2f | PP %.2f | S1 %.2f | S2 %.2f\n",
		sr.R2, sr.R1, sr.Pivot, sr.S1, sr.S2))

	return b.String()
}

// FormatRisk renders the risk engine output as a readable report.
func FormatRisk(symbol string, confidence float64, metrics *model.RiskMetrics, sim *model.SimulationResult, plan *model.PositionPlan, stops *model.StopLevels) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Risk Report | %s | %.0f%% confidence\n\n", symbol, confidence*100))

	if metrics != nil {
		b.WriteString(fmt.Sprintf("VaR (1-day): parametric %.2f%% | historical %.2f%% | CVaR %.2f%%\n",
			metrics.ParametricVaR*100, metrics.HistoricalVaR*100, metrics.CVaR*100))
	}
	if sim != nil {
		b.WriteString(fmt.Sprintf("Monte Carlo (%s paths): expected %.2f | VaR price %.2f | range %.2f – %.2f\n",
			humanize.Comma(int64(len(sim.Paths))), sim.ExpectedPrice, sim.VaRPrice, sim.MinPrice, sim.MaxPrice))
	}
	if plan != nil {
		b.WriteString(fmt.Sprintf("Position: %.2f shares (value %s), risking %s at %.2f/share\n",
			plan.PositionSize, humanize.Commaf(plan.TotalValue),
			humanize.Commaf(plan.RiskAmount), plan.RiskPerShare))
	}
	if stops != nil {
		long, okL := stops.LongStop.Last()
		short, okS := stops.ShortStop.Last()
		atr, okA := stops.ATR.Last()
		if okL && okS && okA {
			b.WriteString(fmt.Sprintf("Stops: long %.2f | short %.2f (ATR %.2f)\n", long, short, atr))
		}
	}

	return b.String()
}

// FormatFailures lists indicators that could not be computed.
func FormatFailures(failed map[string]error) string {
	if len(failed) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Skipped indicators:\n")
	for name, err := range failed {
		b.WriteString(fmt.Sprintf("  %s: %v\n", name, err))
	}
	return b.String()
}
