package trace

import (
	"errors"
	"fmt"
)

// Load errors.
var (
	// ErrNoHeader indicates the log has no header row.
	ErrNoHeader = errors.New("trace: missing header row")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("trace: required column missing")

	// ErrUnknownKind indicates a type cell that is neither flower nor bee.
	ErrUnknownKind = errors.New("trace: unknown record type")

	// ErrEmptyLog indicates a log with a header but no records.
	ErrEmptyLog = errors.New("trace: log contains no records")
)

// ParseError wraps a row-level decoding failure with its position.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
