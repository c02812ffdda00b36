package workbook

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/extrame/xls"
)

// OpenXLS decodes a legacy BIFF8 workbook. The decoder reads sheets
// lazily from the file, so every sheet is copied into memory before the
// file is released.
func OpenXLS(path string) (wb Workbook, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	defer func() {
		if r := recover(); r != nil {
			wb = nil
			err = fmt.Errorf("%w: %v", ErrInvalidFormat, r)
		}
	}()

	book, err := xls.OpenReader(fh, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if book == nil {
		return nil, fmt.Errorf("%w: no workbook stream", ErrInvalidFormat)
	}

	mem := NewMemory()
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		sheet := NewMemorySheet(ws.Name)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				continue
			}
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				sheet.Set(r+1, c+1, parseValue(row.Col(c)))
			}
		}
		mem.Add(sheet)
	}
	return mem, nil
}

// parseValue types a cell rendered by the xls decoder, which formats
// built-in date styles as RFC 3339 and numbers in plain notation.
func parseValue(s string) Value {
	if s == "" {
		return Value{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateValue(t)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(f)
	}
	return TextValue(s)
}
