package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
)

func row(t *testing.T, p1, p2, p3, s1, s2, s3 string) domain.SessionRow {
	t.Helper()
	fields := make([]string, domain.MinRowFields)
	fields[domain.FieldPlayer1], fields[domain.FieldPlayer2], fields[domain.FieldPlayer3] = p1, p2, p3
	fields[domain.FieldScore1], fields[domain.FieldScore2], fields[domain.FieldScore3] = s1, s2, s3
	r, err := domain.NewSessionRow(2, fields)
	require.NoError(t, err)
	return r
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, domain.NewTally()))
	require.Equal(t, "Total sessions: 0\n", buf.String())
}

func TestWrite_FirstWinOrder(t *testing.T) {
	tally := domain.NewTally()
	tally.Record(row(t, "x@1", "y@2", "z@3", "9", "1", "2"))
	tally.Record(row(t, "x@1", "y@2", "z@3", "1", "9", "2"))
	tally.Record(row(t, "x@1", "y@2", "z@3", "9", "1", "2"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tally))
	require.Equal(t, "Total sessions: 3\nx -> 2\ny -> 1\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, domain.NewTally())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
