package parser

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
)

// Delimiter separates fields in a session log line.
const Delimiter = ';'

// LogTallier counts session wins from a delimited session log.
type LogTallier struct {
	logger *zap.Logger
}

// NewLogTallier creates a LogTallier. A nil logger disables logging.
func NewLogTallier(logger *zap.Logger) *LogTallier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogTallier{logger: logger}
}

// TallyFile opens the log at path and tallies it.
func (p *LogTallier) TallyFile(ctx context.Context, path string) (*domain.Tally, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	defer file.Close()

	p.logger.Debug("tallying session log", zap.String("path", path))
	return p.Tally(ctx, file)
}

// Tally reads a session log from r. The first line is a header and is
// skipped; every other line is one session. It stops at the first bad row.
func (p *LogTallier) Tally(ctx context.Context, r io.Reader) (*domain.Tally, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header == "" {
		return nil, domain.ErrMissingHeader
	}

	counter := &lineCounter{r: br}
	reader := csv.NewReader(counter)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	tally := domain.NewTally()
	// lastLine is the line, counted after the header, where the previous
	// record ended.
	lastLine := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			p.logger.Warn("unreadable session row", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedRow, err)
		}

		start, _ := reader.FieldPos(0)
		if start > lastLine+1 {
			// The csv reader skips empty lines; each one is a row with no fields.
			return nil, p.blankRow(lastLine + 2)
		}
		end, _ := reader.FieldPos(len(fields) - 1)
		lastLine = end + strings.Count(fields[len(fields)-1], "\n")

		line := start + 1
		row, err := domain.NewSessionRow(line, fields)
		if err != nil {
			p.logger.Warn("malformed session row",
				zap.Int("line", line),
				zap.Int("fields", len(fields)))
			return nil, err
		}

		winner := tally.Record(row)
		p.logger.Debug("session recorded",
			zap.Int("line", line),
			zap.String("winner", string(winner)))
	}

	if counter.lines() > lastLine {
		return nil, p.blankRow(lastLine + 2)
	}

	return tally, nil
}

func (p *LogTallier) blankRow(line int) error {
	p.logger.Warn("malformed session row",
		zap.Int("line", line),
		zap.Int("fields", 0))
	return &domain.MalformedRowError{Line: line, Fields: 0}
}

// lineCounter counts the physical lines read through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	size     int64
	last     byte
}

func (c *lineCounter) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	if n > 0 {
		c.newlines += bytes.Count(b[:n], []byte{'\n'})
		c.size += int64(n)
		c.last = b[n-1]
	}
	return n, err
}

// lines includes a final line without a trailing newline.
func (c *lineCounter) lines() int {
	if c.size > 0 && c.last != '\n' {
		return c.newlines + 1
	}
	return c.newlines
}
