package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/tourneytally/internal/adapters/otel"
	"github.com/emiliopalmerini/tourneytally/internal/infrastructure/config"
	"github.com/emiliopalmerini/tourneytally/internal/parser"
	"github.com/emiliopalmerini/tourneytally/internal/ports"
)

// shutdownTimeout bounds the final metrics flush so an unreachable collector
// cannot hold the process open.
const shutdownTimeout = 5 * time.Second

// AppContext holds the dependencies of one tally run.
type AppContext struct {
	RunID    string
	Logger   *zap.Logger
	Tallier  *parser.LogTallier
	Exporter ports.MetricsExporter
}

// NewAppContext wires the logger, tallier and metrics exporter for a run.
// A metrics exporter that cannot start is replaced by a no-op one.
func NewAppContext(ctx context.Context, cfg *config.Config, logger *zap.Logger) *AppContext {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	var exporter ports.MetricsExporter = otel.NoOpExporter{}
	if cfg.OTel.Enabled {
		exp, err := otel.NewExporter(ctx, cfg.OTel, runID)
		if err != nil {
			logger.Warn("metrics export disabled", zap.Error(err))
		} else {
			exporter = exp
		}
	}

	return &AppContext{
		RunID:    runID,
		Logger:   logger,
		Tallier:  parser.NewLogTallier(logger),
		Exporter: exporter,
	}
}

// Close flushes the metrics exporter, giving up after shutdownTimeout, and
// syncs the logger.
func (a *AppContext) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err := a.Exporter.Close(ctx)
	_ = a.Logger.Sync()
	return err
}
