package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  CellKind
	}{
		{"empty", nil, KindEmpty},
		{"blank text", "   ", KindEmpty},
		{"schedule date", date(2025, 9, 15), KindDate},
		{"template artifact date", date(1900, 1, 5), KindOther},
		{"hours", 6, KindHours},
		{"hours upper bound", 12, KindHours},
		{"zero", 0, KindOther},
		{"too many hours", 16, KindOther},
		{"fractional", 2.5, KindOther},
		{"holiday", "추석 연휴", KindHoliday},
		{"name", "강명호", KindName},
		{"name with suffix", "박정일강사", KindName},
		{"slash pair", "황소영/정종현", KindName},
		{"stop word", "발표", KindOther},
		{"hour token", "4h", KindHourToken},
		{"upper hour token", "4H", KindHourToken},
		{"out of range token", "16h", KindOther},
		{"latin", "AI", KindOther},
		{"too long", "가나다라마", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(workbook.ValueOf(tt.input)))
		})
	}
}

func TestIsNameLike(t *testing.T) {
	assert.True(t, IsNameLike(" 인선미 "))
	assert.True(t, IsNameLike("남궁민수"))
	assert.False(t, IsNameLike("강"))
	assert.False(t, IsNameLike("강명호1"))
	assert.False(t, IsNameLike("강명호,인선미"))
	for word := range stopWords {
		assert.False(t, IsNameLike(word), word)
	}
}

func TestIsHolidayName(t *testing.T) {
	assert.True(t, IsHolidayName("추석"))
	assert.True(t, IsHolidayName("개천절 (대체휴일)"))
	assert.True(t, IsHolidayName("여름방학"))
	assert.False(t, IsHolidayName("AI기본의 이해 및 활용1"))
}

func TestHoursValue(t *testing.T) {
	h, ok := HoursValue(workbook.NumberValue(8))
	assert.True(t, ok)
	assert.Equal(t, 8, h)

	_, ok = HoursValue(workbook.NumberValue(13))
	assert.False(t, ok)
	_, ok = HoursValue(workbook.TextValue("8"))
	assert.False(t, ok)
}

func TestHourTokens(t *testing.T) {
	assert.Equal(t, []int{3, 2}, hourTokens("이론 3h 실습 2H"))
	assert.Nil(t, hourTokens("16h 0h 3hours"))
}
