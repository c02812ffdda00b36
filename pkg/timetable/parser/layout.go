package parser

import "github.com/ukaji3/timetable-go/pkg/timetable/workbook"

// DetectWeekRows returns the rows at which each week block starts.
// Rows holding a schedule date in any weekday date column are grouped:
// a date row at least minWeekGap rows below the current week start opens
// a new week, closer rows belong to the same week. When no date row is
// found the stock template rows are returned with detected set to false.
func DetectWeekRows(sheet workbook.Sheet) (rows []int, detected bool) {
	var dateRows []int
	for row := scanFirstRow; row <= scanLastRow; row++ {
		if isDateRow(sheet, row) {
			dateRows = append(dateRows, row)
		}
	}
	if len(dateRows) == 0 {
		return DefaultWeekRows(), false
	}
	return groupWeekRows(dateRows), true
}

func isDateRow(sheet workbook.Sheet, row int) bool {
	for _, day := range DayColumns {
		if IsScheduleDate(sheet.Cell(row, day.DateCol)) {
			return true
		}
	}
	return false
}

// groupWeekRows folds ascending date rows into week starts.
func groupWeekRows(dateRows []int) []int {
	weeks := []int{dateRows[0]}
	for _, r := range dateRows[1:] {
		if r-weeks[len(weeks)-1] >= minWeekGap {
			weeks = append(weeks, r)
		}
	}
	return weeks
}
