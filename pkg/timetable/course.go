package timetable

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// DefaultColor is the course color used when none or an invalid one is given.
const DefaultColor = "#4A90D9"

const (
	maxCourseName     = 50
	maxClassName      = 100
	maxInstructorName = 50
	idTimeLayout      = "20060102_150405"
)

var (
	hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	isoDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// now is replaced in tests.
	now = time.Now
)

// CourseInput describes a course document to create.
type CourseInput struct {
	Name      string
	Color     string
	StartTime string
	FileName  string
}

// NewCourse wraps entries into a course document and assigns identifiers
// to the course and every entry. An invalid color or start time falls
// back to the default; a name shorter than two characters is an error.
func NewCourse(in CourseInput, entries []models.ClassEntry) (*models.Course, error) {
	name := truncate(strings.TrimSpace(in.Name), maxCourseName)
	if len([]rune(name)) < 2 {
		return nil, fmt.Errorf("%w: course name must be at least 2 characters", ErrInvalidOptions)
	}
	color := in.Color
	if !hexColor.MatchString(color) {
		color = DefaultColor
	}
	start := in.StartTime
	if !parser.ValidTime(start) {
		start = DefaultStartTime
	}

	ts := now()
	course := &models.Course{
		ID:               newID("course", ts),
		Type:             "course",
		Name:             name,
		Color:            color,
		FileName:         in.FileName,
		UploadedAt:       ts.Format(time.RFC3339),
		DefaultStartTime: start,
		EntryCount:       len(entries),
		Entries:          make([]models.ClassEntry, len(entries)),
	}
	for i, e := range entries {
		if e.ID == "" {
			e.ID = newID("entry", ts)
		}
		course.Entries[i] = e
	}
	return course, nil
}

// ManualEntry describes a single class added without a spreadsheet.
type ManualEntry struct {
	Date       string
	ClassName  string
	Instructor string
	Hours      int
	StartTime  string
	IsHoliday  bool
}

// NewManualEntry validates m and computes its end time. An invalid
// start time falls back to the default.
func NewManualEntry(m ManualEntry) (models.ClassEntry, error) {
	date := strings.TrimSpace(m.Date)
	if !isoDate.MatchString(date) {
		return models.ClassEntry{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidOptions, m.Date)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.ClassEntry{}, fmt.Errorf("%w: date %q: %v", ErrInvalidOptions, m.Date, err)
	}
	className := truncate(strings.TrimSpace(m.ClassName), maxClassName)
	if className == "" {
		return models.ClassEntry{}, fmt.Errorf("%w: class name is required", ErrInvalidOptions)
	}
	if m.Hours < 1 || m.Hours > 12 {
		return models.ClassEntry{}, fmt.Errorf("%w: hours %d outside 1-12", ErrInvalidOptions, m.Hours)
	}
	start := m.StartTime
	if !parser.ValidTime(start) {
		start = DefaultStartTime
	}
	end, err := CalculateEndTime(start, m.Hours)
	if err != nil {
		return models.ClassEntry{}, err
	}
	return models.ClassEntry{
		Date:       date,
		ClassName:  className,
		Instructor: truncate(strings.TrimSpace(m.Instructor), maxInstructorName),
		Hours:      m.Hours,
		StartTime:  start,
		EndTime:    end,
		IsHoliday:  m.IsHoliday,
	}, nil
}

func newID(prefix string, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s", prefix, ts.Format(idTimeLayout), uuid.NewString()[:8])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
