package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tourneytally <session-log>",
		Short: "Count session wins per player in a tournament log",
		Long: `tourneytally reads a semicolon-delimited tournament session log and
prints the number of sessions followed by how many sessions each player won.

The first line of the log is a header and is skipped.

Environment:
  TOURNEYTALLY_LOG_LEVEL      debug, info, warn, error (default warn)
  TOURNEYTALLY_OTEL_ENABLED   export tally metrics over OTLP/gRPC
  TOURNEYTALLY_OTEL_ENDPOINT  collector address, e.g. localhost:4317
  TOURNEYTALLY_OTEL_INSECURE  disable TLS to the collector`,
		Args:          logPathArg,
		RunE:          runTally,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

// logPathArg requires the log path. Arguments after it are ignored.
func logPathArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return domain.ErrArgumentMissing
	}
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
