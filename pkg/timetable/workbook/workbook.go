// Package workbook provides a read-only, typed view over spreadsheet files.
package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be decoded as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// Kind is the type of a cell value.
type Kind int

const (
	Empty Kind = iota
	Number
	Text
	Date
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	case Date:
		return "date"
	default:
		return "empty"
	}
}

// Value is a single cell value. The zero Value is Empty.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	Time   time.Time
}

// NumberValue returns a Number value.
func NumberValue(n float64) Value { return Value{Kind: Number, Number: n} }

// TextValue returns a Text value, or Empty for "".
func TextValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: Text, Text: s}
}

// DateValue returns a Date value.
func DateValue(t time.Time) Value { return Value{Kind: Date, Time: t} }

// ValueOf converts a Go value into a cell Value.
// Unsupported types are rendered as text.
func ValueOf(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case time.Time:
		return DateValue(x)
	case string:
		return TextValue(x)
	case int:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	default:
		return TextValue(fmt.Sprint(x))
	}
}

// IsEmpty reports whether the cell holds nothing.
func (v Value) IsEmpty() bool { return v.Kind == Empty }

// Sheet is a grid of cells addressed by 1-based row and column.
type Sheet interface {
	Name() string
	Cell(row, col int) Value
}

// Workbook is an ordered set of named sheets.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	Sheet(name string) (Sheet, bool)
	Close() error
}

// Open opens the workbook at path read-only. Files ending in .xls are
// decoded as BIFF8; everything else is treated as OOXML.
func Open(path string) (Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return OpenXLS(path)
	default:
		return OpenXLSX(path)
	}
}
