package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

var sample = []models.ClassEntry{
	{Date: "2025-09-15", ClassName: "AI 기초", Instructor: "강명호,인선미", Hours: 6, StartTime: "09:00", EndTime: "16:00"},
	{Date: "2025-09-16", ClassName: "추석", StartTime: "09:00", EndTime: "09:00", IsHoliday: true},
	{Date: "2025-09-17", ClassName: "<실습>", Instructor: "황소영", Hours: 3, StartTime: "09:00", EndTime: "12:00"},
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sample[2], false)
	require.NoError(t, err)
	assert.Equal(t,
		`{"date":"2025-09-17","class_name":"<실습>","instructor":"황소영","hours":3,"start_time":"09:00","end_time":"12:00","is_holiday":false}`,
		string(data))

	pretty, err := ToJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(pretty))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"!is_holiday", []string{"2025-09-15", "2025-09-17"}},
		{"hours >= 4 && !is_holiday", []string{"2025-09-15"}},
		{`instructor contains "황소영"`, []string{"2025-09-17"}},
		{`date startsWith "2025-09-16"`, []string{"2025-09-16"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			require.NoError(t, err)
			kept, err := f.Apply(sample)
			require.NoError(t, err)

			dates := make([]string, 0, len(kept))
			for _, e := range kept {
				dates = append(dates, e.Date)
			}
			assert.Equal(t, tt.want, dates)
		})
	}
}

func TestFilterInvalid(t *testing.T) {
	_, err := NewFilter("hours +")
	assert.Error(t, err)

	_, err = NewFilter("hours + 1")
	assert.Error(t, err, "non-boolean expressions are rejected")

	_, err = NewFilter("room == 1")
	assert.Error(t, err, "unknown fields are rejected")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"date", "class_name", "instructor", "hours", "start_time", "end_time", "is_holiday"}, rows[0])
	assert.Equal(t, "강명호,인선미", rows[1][2])
	assert.Equal(t, "6", rows[1][3])
	assert.Equal(t, "TRUE", rows[2][6])
}
