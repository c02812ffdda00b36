package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidTime indicates a malformed HH:MM string.
var ErrInvalidTime = errors.New("invalid time")

const (
	minutesPerDay = 24 * 60
	// lunchStart is 13:00; a session running past it gets one extra hour.
	lunchStart = 13 * 60
	lunchBreak = 60
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidTime reports whether s is an HH:MM 24-hour time.
func ValidTime(s string) bool {
	return clockTime.MatchString(s)
}

// CalculateEndTime adds hours to start and extends the result by the
// lunch break when the session starts before 13:00 and would otherwise
// end after it. A session starting at 13:00 does not cross.
func CalculateEndTime(start string, hours int) (string, error) {
	begin, err := parseClock(start)
	if err != nil {
		return "", err
	}
	end := begin + hours*60
	if begin < lunchStart && end > lunchStart {
		end += lunchBreak
	}
	return formatClock(end), nil
}

func parseClock(s string) (int, error) {
	m := clockTime.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return h*60 + minute, nil
}

// formatClock renders minutes since midnight, wrapping past 24:00.
func formatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
