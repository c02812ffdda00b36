package timetable

import (
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

// GetSheetNames returns the selectable sheet names of the workbook at
// path in workbook order, without info sheets.
func GetSheetNames(path string) ([]string, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, NewParseError(path, "open", err)
	}
	defer wb.Close()

	return SheetNames(wb), nil
}

// SheetNames returns the selectable sheet names of an open workbook.
func SheetNames(wb workbook.Workbook) []string {
	var sheets []string
	for _, name := range wb.SheetNames() {
		if !parser.IsInfoSheet(name) {
			sheets = append(sheets, name)
		}
	}
	return sheets
}

// ParseTimetable opens the workbook at path, extracts the entries of the
// selected sheets and releases the workbook. Only an unreadable workbook
// or invalid options produce an error; an empty result does not.
func ParseTimetable(path string, selected []string, opts Options) (*models.ParseResult, error) {
	p, err := opts.parser()
	if err != nil {
		return nil, err
	}

	wb, err := workbook.Open(path)
	if err != nil {
		return nil, NewParseError(path, "open", err)
	}
	defer wb.Close()

	return p.Parse(wb, selected), nil
}

// ParseWorkbook extracts entries from a workbook owned by the caller.
// The workbook is not closed.
func ParseWorkbook(wb workbook.Workbook, selected []string, opts Options) (*models.ParseResult, error) {
	p, err := opts.parser()
	if err != nil {
		return nil, err
	}
	return p.Parse(wb, selected), nil
}

// CalculateEndTime returns start plus hours as HH:MM, adding one hour
// when the session runs across the 13:00 lunch break.
func CalculateEndTime(start string, hours int) (string, error) {
	return parser.CalculateEndTime(start, hours)
}
