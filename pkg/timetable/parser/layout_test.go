package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

func TestDetectWeekRows(t *testing.T) {
	sheet := workbook.NewMemorySheet("9월").
		Set(9, 3, date(2025, 9, 1)).
		Set(11, 11, date(2025, 9, 5)). // same week, Friday only
		Set(15, 5, date(2025, 9, 9)).
		Set(20, 7, date(2025, 9, 17)).
		Set(23, 9, date(2025, 9, 18)).
		Set(24, 3, date(2025, 9, 22)).
		Set(30, 2, date(2025, 9, 29)). // not a date column
		Set(60, 3, date(2025, 10, 6))  // below the scan window

	rows, detected := DetectWeekRows(sheet)
	assert.True(t, detected)
	assert.Equal(t, []int{9, 15, 20, 24}, rows)
}

func TestDetectWeekRowsIgnoresOldDates(t *testing.T) {
	sheet := workbook.NewMemorySheet("9월").
		Set(10, 3, date(1900, 1, 1)).
		Set(16, 3, date(2019, 12, 30))

	rows, detected := DetectWeekRows(sheet)
	assert.False(t, detected)
	assert.Equal(t, []int{10, 16, 22, 28, 34, 40}, rows)
}

func TestDetectWeekRowsFallbackIsACopy(t *testing.T) {
	rows, _ := DetectWeekRows(workbook.NewMemorySheet("빈 시트"))
	rows[0] = 99
	assert.Equal(t, 10, DefaultWeekRows()[0])
}

func TestGroupWeekRows(t *testing.T) {
	assert.Equal(t, []int{10}, groupWeekRows([]int{10, 11, 12, 13}))
	assert.Equal(t, []int{10, 14, 18}, groupWeekRows([]int{10, 13, 14, 17, 18}))
}

func TestDayColumns(t *testing.T) {
	assert.Len(t, DayColumns, 5)
	assert.Equal(t, time.Monday, DayColumns[0].Weekday)
	assert.Equal(t, DayColumn{Weekday: time.Friday, DateCol: 11, ClassCol: 13}, DayColumns[4])
}
