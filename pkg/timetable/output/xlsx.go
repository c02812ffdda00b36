package output

import (
	"io"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the sheet name used by WriteXLSX.
const ExportSheet = "Timetable"

var exportHeader = []interface{}{
	"date", "class_name", "instructor", "hours", "start_time", "end_time", "is_holiday",
}

// WriteXLSX writes entries as a flat table, one entry per row below a
// header row.
func WriteXLSX(w io.Writer, entries []models.ClassEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.Date, e.ClassName, e.Instructor, e.Hours, e.StartTime, e.EndTime, e.IsHoliday}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetPanes(ExportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.Write(w)
}
