package ports

import (
	"context"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
)

// MetricsExporter exports tally results to an external observability system.
type MetricsExporter interface {
	// ExportTally records the results of one completed pass.
	ExportTally(ctx context.Context, m *TallyMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// TallyMetrics is the outcome of one run over a session log.
type TallyMetrics struct {
	Source   string
	Sessions int64
	Wins     []domain.WinCount
}
