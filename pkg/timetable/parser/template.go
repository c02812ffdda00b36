// Package parser extracts class schedules from calendar-template sheets.
package parser

import "time"

// DayColumn pairs the date column with the class-name column of one weekday.
type DayColumn struct {
	Weekday  time.Weekday
	DateCol  int
	ClassCol int
}

// DayColumns is the weekday layout of the calendar template.
// Friday's class name sits one column further right than the others.
var DayColumns = [...]DayColumn{
	{Weekday: time.Monday, DateCol: 3, ClassCol: 4},     // C / D
	{Weekday: time.Tuesday, DateCol: 5, ClassCol: 6},    // E / F
	{Weekday: time.Wednesday, DateCol: 7, ClassCol: 8},  // G / H
	{Weekday: time.Thursday, DateCol: 9, ClassCol: 10},  // I / J
	{Weekday: time.Friday, DateCol: 11, ClassCol: 13},   // K / M
}

const (
	// scanFirstRow and scanLastRow bound the week detection window.
	scanFirstRow = 8
	scanLastRow  = 54

	// minWeekGap is the smallest row distance between two week starts.
	minWeekGap = 4

	// detailRows is how many rows under a week start hold instructors and hours.
	detailRows = 5

	// minScheduleYear rejects template artifacts such as 1900 serials.
	minScheduleYear = 2020

	minHours = 1
	maxHours = 12

	instructorSuffix = "강사"
)

// defaultWeekRows are the week starts of the stock template, spaced six rows apart.
var defaultWeekRows = [...]int{10, 16, 22, 28, 34, 40}

// DefaultWeekRows returns a copy of the fallback week-start rows.
func DefaultWeekRows() []int {
	rows := make([]int, len(defaultWeekRows))
	copy(rows, defaultWeekRows[:])
	return rows
}

var infoSheets = map[string]struct{}{
	"정보":     {},
	"정보 (2)": {},
	"Sheet1": {},
}

// IsInfoSheet reports whether name is a template info page that never
// holds a schedule.
func IsInfoSheet(name string) bool {
	_, ok := infoSheets[name]
	return ok
}

// holidayKeywords mark non-instructional days when found anywhere in a class name.
var holidayKeywords = [...]string{
	"추석", "개천절", "한글날", "대체휴일", "방학", "어린이날",
	"현충일", "광복절", "석가탄신일", "삼일절", "신정", "성탄절",
	"구정", "설날", "연휴", "휴일", "메모", "새해",
}

// stopWords are descriptive words shaped like names.
var stopWords = map[string]struct{}{
	"발표": {}, "자격증": {}, "주제별": {}, "네트워킹": {}, "온라인": {}, "오프라인": {},
	"자기소개": {}, "팀구성": {}, "특강": {}, "보강": {}, "실습": {}, "복습": {},
	"평가": {}, "시험": {}, "면접": {}, "상담": {}, "수료": {}, "졸업": {},
	"쇼츠": {}, "영상": {}, "촬영": {}, "편집": {}, "기획": {}, "운영": {},
}

func isStopWord(s string) bool {
	_, ok := stopWords[s]
	return ok
}
