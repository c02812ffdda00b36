package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook adapts an excelize file. Cell values are read raw so that
// numbers are never rounded by their display format.
type xlsxWorkbook struct {
	f        *excelize.File
	names    []string
	date1904 bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

// OpenXLSX opens an OOXML workbook.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromExcelize(f), nil
}

// FromExcelize wraps an already opened file. Closing the returned
// workbook closes f.
func FromExcelize(f *excelize.File) Workbook {
	wb := &xlsxWorkbook{
		f:          f,
		names:      f.GetSheetList(),
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb
}

func (w *xlsxWorkbook) SheetNames() []string {
	names := make([]string, len(w.names))
	copy(names, w.names)
	return names
}

func (w *xlsxWorkbook) Sheet(name string) (Sheet, bool) {
	for _, n := range w.names {
		if n == name {
			return &xlsxSheet{wb: w, name: name}, true
		}
	}
	return nil, false
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

type xlsxSheet struct {
	wb   *xlsxWorkbook
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) Cell(row, col int) Value {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Value{}
	}
	f := s.wb.f

	raw, err := f.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return Value{}
	}
	typ, err := f.GetCellType(s.name, ref)
	if err != nil {
		return Value{}
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return TextValue(raw)
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return DateValue(t)
		}
		return TextValue(raw)
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return TextValue(raw)
	}
	if s.wb.isDateStyle(s.name, ref) {
		if t, err := excelize.ExcelDateToTime(n, s.wb.date1904); err == nil {
			return DateValue(t)
		}
	}
	return NumberValue(n)
}

func (w *xlsxWorkbook) isDateStyle(sheet, ref string) bool {
	idx, err := w.f.GetCellStyle(sheet, ref)
	if err != nil {
		return false
	}
	if v, ok := w.dateStyles[idx]; ok {
		return v
	}
	style, err := w.f.GetStyle(idx)
	isDate := err == nil && style != nil && isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	w.dateStyles[idx] = isDate
	return isDate
}

// isDateNumFmt reports whether a built-in format id or a custom format
// code renders a date.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode inspects a custom number format, ignoring literals,
// escapes and bracketed sections such as colors or locales.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}
	s := strings.ToLower(b.String())
	if strings.ContainsAny(s, "yd") {
		return true
	}
	return strings.Contains(s, "m") && !strings.ContainsAny(s, "hs")
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
