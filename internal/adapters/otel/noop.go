package otel

import (
	"context"

	"github.com/emiliopalmerini/tourneytally/internal/ports"
)

var (
	_ ports.MetricsExporter = (*Exporter)(nil)
	_ ports.MetricsExporter = NoOpExporter{}
)

// NoOpExporter discards tallies. It stands in when export is disabled or the
// collector cannot be reached.
type NoOpExporter struct{}

func (NoOpExporter) ExportTally(context.Context, *ports.TallyMetrics) error { return nil }

func (NoOpExporter) Close(context.Context) error { return nil }
