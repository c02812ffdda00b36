package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

// CellKind is the role a cell can play in the template.
type CellKind int

const (
	KindEmpty CellKind = iota
	// KindDate is a date on or after minScheduleYear.
	KindDate
	// KindHours is a whole number usable as a class length.
	KindHours
	// KindHoliday is text containing a holiday keyword.
	KindHoliday
	// KindName is text shaped like one or two instructor names.
	KindName
	// KindHourToken is text of the form "Nh".
	KindHourToken
	// KindOther is any value the heuristics ignore.
	KindOther
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDate:
		return "date"
	case KindHours:
		return "hours"
	case KindHoliday:
		return "holiday"
	case KindName:
		return "name"
	case KindHourToken:
		return "hour_token"
	default:
		return "other"
	}
}

var (
	bareName     = regexp.MustCompile(`^[가-힣]{2,4}$`)
	pairName     = regexp.MustCompile(`^[가-힣]{2,4}/[가-힣]{2,4}$`)
	suffixedName = regexp.MustCompile(`^[가-힣]{2,4}` + instructorSuffix + `$`)
	hourToken    = regexp.MustCompile(`(?i)^(\d+)h$`)
)

// Classify reports the kind of v. It has no side effects.
func Classify(v workbook.Value) CellKind {
	switch v.Kind {
	case workbook.Empty:
		return KindEmpty
	case workbook.Date:
		if IsScheduleDate(v) {
			return KindDate
		}
		return KindOther
	case workbook.Number:
		if _, ok := HoursValue(v); ok {
			return KindHours
		}
		return KindOther
	}

	text := strings.TrimSpace(v.Text)
	switch {
	case text == "":
		return KindEmpty
	case IsHolidayName(text):
		return KindHoliday
	case IsNameLike(text):
		return KindName
	}
	if _, ok := parseHourToken(text); ok {
		return KindHourToken
	}
	return KindOther
}

// IsScheduleDate reports whether v is a date usable as a schedule day.
func IsScheduleDate(v workbook.Value) bool {
	return v.Kind == workbook.Date && v.Time.Year() >= minScheduleYear
}

// HoursValue returns the class length held by a numeric cell.
func HoursValue(v workbook.Value) (int, bool) {
	if v.Kind != workbook.Number || v.Number != math.Trunc(v.Number) {
		return 0, false
	}
	if v.Number < minHours || v.Number > maxHours {
		return 0, false
	}
	return int(v.Number), true
}

// IsHolidayName reports whether a class name contains a holiday keyword.
func IsHolidayName(name string) bool {
	for _, kw := range holidayKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// IsNameLike reports whether text is one instructor name, a name with
// the instructor suffix, or two names joined by a slash.
func IsNameLike(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}
	if isStopWord(s) {
		return false
	}
	return bareName.MatchString(s) || pairName.MatchString(s) || suffixedName.MatchString(s)
}

// parseHourToken parses one "Nh" token with N in [1,12].
func parseHourToken(tok string) (int, bool) {
	m := hourToken.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h < minHours || h > maxHours {
		return 0, false
	}
	return h, true
}

// hourTokens returns every standalone "Nh" token in text.
func hourTokens(text string) []int {
	var hours []int
	for _, tok := range strings.Fields(text) {
		if h, ok := parseHourToken(tok); ok {
			hours = append(hours, h)
		}
	}
	return hours
}
