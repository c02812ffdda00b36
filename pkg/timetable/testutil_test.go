package timetable

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// createTemplate writes a calendar-template workbook with an info sheet,
// one filled month and one blank month.
func createTemplate(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "정보"))
	f.SetCellValue("정보", "B2", "사용 안내")

	_, err := f.NewSheet("9월")
	require.NoError(t, err)
	cells := map[string]interface{}{
		"C10": day(2025, 9, 15),
		"D10": "AI기본의 이해 및\n활용1",
		"D11": "강명호,인선미",
		"C12": 6,
		"D12": "4h",
		"E10": day(2025, 9, 16),
		"F10": "파이썬 기초 3h",
		"F11": "황소영/정종현",
		"F12": "3h",
		"F13": "2h",
		"G10": day(2025, 9, 17),
		"H10": "추석",
		"H11": "발표",
		"I10": day(1900, 1, 5),
		"J10": "무시",
		"C16": day(2025, 9, 22),
		"D16": "실습 프로젝트",
		"D17": "박정일강사",
		"M16": "금요일 수업",
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("9월", ref, v))
	}

	_, err = f.NewSheet("10월")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
