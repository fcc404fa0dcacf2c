package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
)

// Write prints the session total followed by one line per winner.
func Write(w io.Writer, tally *domain.Tally) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Total sessions: %d\n", tally.Sessions)
	for _, wc := range tally.Winners() {
		fmt.Fprintf(bw, "%s -> %d\n", wc.Player, wc.Wins)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
