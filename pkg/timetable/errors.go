package timetable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = workbook.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = workbook.ErrInvalidFormat

// ErrInvalidTime indicates a malformed HH:MM string.
var ErrInvalidTime = parser.ErrInvalidTime

// ErrInvalidOptions indicates unusable parse options.
var ErrInvalidOptions = errors.New("invalid options")

// ErrNoEntries indicates a parse produced no class entries. The engine
// never returns it; callers that treat an empty result as failure do.
var ErrNoEntries = errors.New("no class entries found")

// ParseError represents a failure to read a workbook as a whole.
type ParseError struct {
	Path string
	Op   string // "open"
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on %q (%s): %v", e.Path, e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(path, op string, err error) *ParseError {
	return &ParseError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
