package recorder

// NoopRecorder discards everything. Used when no database is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that does nothing.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(*AnalysisRecord) error { return nil }
func (n *NoopRecorder) RecordRisk(*RiskRecord) error         { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
