package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when the session log cannot be opened.
	ErrSourceUnavailable = errors.New("session log unavailable")
	// ErrMalformedRow is returned for a row that cannot be read as a session.
	ErrMalformedRow = errors.New("malformed session row")
	// ErrArgumentMissing is returned when no log path is given.
	ErrArgumentMissing = errors.New("missing session log path")
	// ErrMissingHeader is returned for a log without even a header line.
	ErrMissingHeader = errors.New("session log has no header line")
)

// MalformedRowError describes a row with too few fields.
type MalformedRowError struct {
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: %s: got %d fields, need at least %d",
		e.Line, ErrMalformedRow, e.Fields, MinRowFields)
}

func (e *MalformedRowError) Unwrap() error {
	return ErrMalformedRow
}
