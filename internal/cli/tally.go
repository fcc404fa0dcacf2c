package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/tourneytally/internal/infrastructure/config"
	"github.com/emiliopalmerini/tourneytally/internal/logging"
	"github.com/emiliopalmerini/tourneytally/internal/ports"
	"github.com/emiliopalmerini/tourneytally/internal/report"
)

func runTally(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	app := NewAppContext(ctx, cfg, logger)
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			app.Logger.Warn("failed to flush metrics", zap.Error(err))
		}
	}()

	return tallyLog(ctx, app, args[0], cmd.OutOrStdout())
}

func tallyLog(ctx context.Context, app *AppContext, path string, out io.Writer) error {
	app.Logger.Debug("run started", zap.String("path", path))

	tally, err := app.Tallier.TallyFile(ctx, path)
	if err != nil {
		return err
	}

	if err := report.Write(out, tally); err != nil {
		return err
	}

	err = app.Exporter.ExportTally(ctx, &ports.TallyMetrics{
		Source:   path,
		Sessions: tally.Sessions,
		Wins:     tally.Winners(),
	})
	if err != nil {
		app.Logger.Warn("failed to export tally metrics", zap.Error(err))
	}

	app.Logger.Debug("run finished",
		zap.Int64("sessions", tally.Sessions),
		zap.Int("winners", len(tally.Winners())))
	return nil
}
