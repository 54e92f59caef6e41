package recorder

import "QuantSentinel/internal/model"

// AnalysisRecord holds one completed analysis run.
type AnalysisRecord struct {
	Symbol   string
	Bars     int
	Snapshot *model.TrendSnapshot
}

// RiskRecord holds the risk engine output for one run. Stops carries the
// latest ATR-based stop levels; only the last defined row is persisted.
type RiskRecord struct {
	Symbol     string
	Confidence float64
	Metrics    *model.RiskMetrics
	Simulation *model.SimulationResult
	Position   *model.PositionPlan
	Stops      *model.StopLevels
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	RecordRisk(rec *RiskRecord) error
	Close() error
}
