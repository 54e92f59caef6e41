package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT,
			bars             INTEGER,
			current_price    REAL,
			price_change_pct REAL,
			trend_direction  TEXT,
			trend_strength   REAL,
			trend_label      TEXT,
			momentum         REAL,
			rsi              REAL,
			rsi_condition    TEXT,
			macd             REAL,
			macd_signal      REAL,
			macd_histogram   REAL,
			macd_crossover   TEXT,
			volume           REAL,
			volume_avg       REAL,
			volume_regime    TEXT,
			pivot            REAL,
			r1               REAL,
			r2               REAL,
			s1               REAL,
			s2               REAL,
			volatility       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS risk_runs (
			id              TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT,
			confidence      REAL,
			parametric_var  REAL,
			historical_var  REAL,
			cvar            REAL,
			expected_price  REAL,
			var_price       REAL,
			max_price       REAL,
			min_price       REAL,
			position_size   REAL,
			position_value  REAL,
			risk_amount     REAL,
			risk_per_share  REAL,
			long_stop       REAL,
			short_stop      REAL,
			atr             REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_risk_ts ON risk_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordAnalysis inserts one analysis snapshot.
func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := rec.Snapshot
	_, err := r.db.Exec(`INSERT INTO analysis_runs (
		id, timestamp, symbol, bars, current_price, price_change_pct,
		trend_direction, trend_strength, trend_label, momentum,
		rsi, rsi_condition, macd, macd_signal, macd_histogram, macd_crossover,
		volume, volume_avg, volume_regime, pivot, r1, r2, s1, s2, volatility
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), time.Now().Unix(), rec.Symbol, rec.Bars,
		snap.CurrentPrice, snap.PriceChangePct,
		string(snap.Trend.Direction), snap.Trend.Strength, string(snap.Trend.Description), snap.Trend.Momentum,
		snap.RSI.Value, string(snap.RSI.Condition),
		snap.MACD.Value, snap.MACD.Signal, snap.MACD.Histogram, string(snap.MACD.Crossover),
		snap.Volume.Current, snap.Volume.Average, string(snap.Volume.Trend),
		snap.SupportResistance.Pivot, snap.SupportResistance.R1, snap.SupportResistance.R2,
		snap.SupportResistance.S1, snap.SupportResistance.S2, snap.Volatility,
	)
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}
	return nil
}

// RecordRisk inserts one risk engine run.
func (r *SQLiteRecorder) RecordRisk(rec *RiskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		pVar, hVar, cvar                     float64
		expected, varPrice, maxP, minP       float64
		posSize, posValue, riskAmt, perShare float64
	)
	if rec.Metrics != nil {
		pVar, hVar, cvar = rec.Metrics.ParametricVaR, rec.Metrics.HistoricalVaR, rec.Metrics.CVaR
	}
	if rec.Simulation != nil {
		expected, varPrice = rec.Simulation.ExpectedPrice, rec.Simulation.VaRPrice
		maxP, minP = rec.Simulation.MaxPrice, rec.Simulation.MinPrice
	}
	if rec.Position != nil {
		posSize, posValue = rec.Position.PositionSize, rec.Position.TotalValue
		riskAmt, perShare = rec.Position.RiskAmount, rec.Position.RiskPerShare
	}
	var longStop, shortStop, atr float64
	if rec.Stops != nil {
		longStop, _ = rec.Stops.LongStop.Last()
		shortStop, _ = rec.Stops.ShortStop.Last()
		atr, _ = rec.Stops.ATR.Last()
	}

	_, err := r.db.Exec(`INSERT INTO risk_runs (
		id, timestamp, symbol, confidence,
		parametric_var, historical_var, cvar,
		expected_price, var_price, max_price, min_price,
		position_size, position_value, risk_amount, risk_per_share,
		long_stop, short_stop, atr
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), time.Now().Unix(), rec.Symbol, rec.Confidence,
		pVar, hVar, cvar, expected, varPrice, maxP, minP,
		posSize, posValue, riskAmt, perShare,
		longStop, shortStop, atr,
	)
	if err != nil {
		return fmt.Errorf("insert risk run: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
