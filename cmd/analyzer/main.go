package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"QuantSentinel/internal/calculator"
	"QuantSentinel/internal/config"
	"QuantSentinel/internal/loader"
	"QuantSentinel/internal/model"
	"QuantSentinel/internal/recorder"
	"QuantSentinel/internal/report"
	"QuantSentinel/internal/risk"
	"QuantSentinel/internal/scheduler"
	"QuantSentinel/internal/trend"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	csvPath := flag.String("csv", "", "path to OHLCV CSV (overrides config)")
	symbol := flag.String("symbol", "", "instrument symbol (overrides config)")
	watch := flag.Bool("watch", false, "keep running on the configured cron schedule")
	flag.Parse()

	// .env is optional; real env vars still win inside config.Load.
	_ = godotenv.Load()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *csvPath != "" {
		cfg.Data.CSVPath = *csvPath
	}
	if *symbol != "" {
		cfg.Data.Symbol = *symbol
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	run := func() error { return analyze(cfg, rec) }

	if err := run(); err != nil {
		log.Fatalf("[FATAL] analysis: %v", err)
	}

	if !*watch {
		return
	}
	if cfg.Schedule.AnalysisCron == "" {
		log.Fatalf("[FATAL] -watch requires schedule.analysis_cron")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx)
	if err := sched.Register(cfg.Schedule.AnalysisCron, run); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}

// analyze runs the full pipeline once: load bars, compute indicators,
// classify the trend, run the risk engine, print and record everything.
func analyze(cfg *config.Config, rec recorder.Recorder) error {
	bars, err := loader.ReadCSV(cfg.Data.CSVPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}
	if len(bars) == 0 {
		return fmt.Errorf("%w: no bars in %s", model.ErrInsufficientData, cfg.Data.CSVPath)
	}
	log.Printf("[INFO] loaded %d bars for %s", len(bars), cfg.Data.Symbol)

	set, err := calculator.ComputeAll(bars, indicatorParams(cfg))
	if err != nil {
		return fmt.Errorf("compute indicators: %w", err)
	}
	if msg := report.FormatFailures(set.Failed); msg != "" {
		log.Printf("[WARN] %s", msg)
	}

	snap, err := trend.Classify(bars, set)
	if err != nil {
		return fmt.Errorf("classify trend: %w", err)
	}
	fmt.Println(report.FormatAnalysis(cfg.Data.Symbol, snap))

	if err := rec.RecordAnalysis(&recorder.AnalysisRecord{
		Symbol:   cfg.Data.Symbol,
		Bars:     len(bars),
		Snapshot: snap,
	}); err != nil {
		log.Printf("[WARN] record analysis: %v", err)
	}

	metrics, sim, plan, stops, err := analyzeRisk(cfg, bars, set)
	if err != nil {
		return fmt.Errorf("risk analysis: %w", err)
	}
	fmt.Println(report.FormatRisk(cfg.Data.Symbol, cfg.Risk.Confidence, metrics, sim, plan, stops))

	if err := rec.RecordRisk(&recorder.RiskRecord{
		Symbol:     cfg.Data.Symbol,
		Confidence: cfg.Risk.Confidence,
		Metrics:    metrics,
		Simulation: sim,
		Position:   plan,
		Stops:      stops,
	}); err != nil {
		log.Printf("[WARN] record risk: %v", err)
	}
	return nil
}

func analyzeRisk(cfg *config.Config, bars []model.OHLCV, set *calculator.IndicatorSet) (
	*model.RiskMetrics, *model.SimulationResult, *model.PositionPlan, *model.StopLevels, error) {

	returns := model.Returns(bars)

	metrics, err := risk.VaR(returns, cfg.Risk.Confidence, cfg.Risk.HorizonDays)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	vol := cfg.Risk.AnnualVol
	if vol == 0 {
		vol, err = risk.AnnualizedVolatility(returns)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	current := bars[len(bars)-1].Close
	sim, err := risk.MonteCarlo(risk.SimulationParams{
		Price:            current,
		AnnualVolatility: vol,
		Days:             cfg.Risk.SimulationDays,
		Simulations:      cfg.Risk.Simulations,
		Confidence:       cfg.Risk.Confidence,
		Seed:             cfg.Risk.Seed,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	stops, err := risk.OptimizeStops(bars, cfg.Risk.ATRMultiple, cfg.Risk.StopLookback)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	// Size the position against the latest ATR-based long stop. A stop that
	// lands exactly on the entry means sizing is meaningless; report the
	// rest without a plan in that case.
	var plan *model.PositionPlan
	if stop, ok := stops.LongStop.Last(); ok {
		plan, err = risk.PositionSize(cfg.Risk.AccountSize, cfg.Risk.RiskPct, current, stop)
		if err != nil && !errors.Is(err, model.ErrNumericDegeneracy) {
			return nil, nil, nil, nil, err
		}
	}

	return metrics, sim, plan, stops, nil
}

func indicatorParams(cfg *config.Config) calculator.Params {
	ind := cfg.Indicators
	return calculator.Params{
		MomentumPeriod:  ind.MomentumPeriod,
		RSIPeriod:       ind.RSIPeriod,
		MACDFast:        ind.MACDFast,
		MACDSlow:        ind.MACDSlow,
		MACDSignal:      ind.MACDSignal,
		BollingerPeriod: ind.BollingerPeriod,
		BollingerStdDev: ind.BollingerStdDev,
		SMAShort:        ind.SMAShort,
		SMALong:         ind.SMALong,
		EMAPeriod:       ind.EMAPeriod,
		VolumePeriod:    ind.VolumePeriod,
		ATRPeriod:       ind.ATRPeriod,
		ADXPeriod:       ind.ADXPeriod,
		MFIPeriod:       ind.MFIPeriod,
		StochRSIPeriod:  ind.StochRSIPeriod,
		StochRSISmoothK: ind.StochRSISmoothK,
		StochRSISmoothD: ind.StochRSISmoothD,
		IchimokuConv:    ind.IchimokuConv,
		IchimokuBase:    ind.IchimokuBase,
		IchimokuSpanB:   ind.IchimokuSpanB,
	}
}
