package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/workbook"
)

const dateLayout = "2006-01-02"

var trailingHours = regexp.MustCompile(`(?i)\s+\d+h\s*$`)

// Settings configures a Parser.
type Settings struct {
	// StartTime is the HH:MM start of every parsed class.
	StartTime string
	// DefaultHours applies when a day has no hour evidence.
	DefaultHours int
	// Log receives progress and warnings. Nil discards them.
	Log logrus.FieldLogger
}

// Parser turns calendar-template sheets into class entries. It keeps no
// state between calls and may be shared by goroutines as long as each
// call gets its own workbook.
type Parser struct {
	startTime    string
	defaultHours int
	log          logrus.FieldLogger
}

// New validates s and returns a Parser.
func New(s Settings) (*Parser, error) {
	if !ValidTime(s.StartTime) {
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidTime, s.StartTime)
	}
	if s.DefaultHours < minHours || s.DefaultHours > maxHours {
		return nil, fmt.Errorf("default hours %d outside [%d,%d]", s.DefaultHours, minHours, maxHours)
	}
	log := s.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Parser{startTime: s.StartTime, defaultHours: s.DefaultHours, log: log}, nil
}

// Parse extracts entries from the selected sheets in the given order.
// Info sheets and missing sheets are skipped with a diagnostic.
func (p *Parser) Parse(wb workbook.Workbook, selected []string) *models.ParseResult {
	result := &models.ParseResult{Entries: []models.ClassEntry{}}

	for _, name := range selected {
		log := p.log.WithField("sheet", name)
		if IsInfoSheet(name) {
			log.Warn("skipping info sheet")
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				Kind: models.DiagInfoSheet, Sheet: name, Message: "info sheet is never parsed",
			})
			continue
		}
		sheet, ok := wb.Sheet(name)
		if !ok {
			log.Warn("sheet not found")
			result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
				Kind: models.DiagSheetNotFound, Sheet: name, Message: "sheet not found in workbook",
			})
			continue
		}

		log.Info("parsing sheet")
		entries, diags := p.ParseSheet(sheet)
		result.Entries = append(result.Entries, entries...)
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	result.EntryCount = len(result.Entries)
	if result.EntryCount == 0 {
		result.Diagnostics = append(result.Diagnostics, models.Diagnostic{
			Kind: models.DiagNoEntries, Message: "no class entries found",
		})
	}
	p.log.WithField("entries", result.EntryCount).Info("timetable parsed")
	return result
}

// ParseSheet extracts the entries of one sheet in week-row then weekday order.
func (p *Parser) ParseSheet(sheet workbook.Sheet) ([]models.ClassEntry, []models.Diagnostic) {
	var (
		entries []models.ClassEntry
		diags   []models.Diagnostic
	)
	log := p.log.WithField("sheet", sheet.Name())

	weekRows, detected := DetectWeekRows(sheet)
	if detected {
		log.WithField("rows", weekRows).Info("detected week rows")
	} else {
		log.Warn("no date rows detected, using default week rows")
		diags = append(diags, models.Diagnostic{
			Kind:    models.DiagNoWeekRows,
			Sheet:   sheet.Name(),
			Message: fmt.Sprintf("no date rows detected, using default rows %v", weekRows),
		})
	}

	for _, weekRow := range weekRows {
		for _, day := range DayColumns {
			entry, ext, ok := p.buildEntry(sheet, weekRow, day)
			if !ok {
				continue
			}
			if ext.Clamped {
				log.WithFields(logrus.Fields{"row": weekRow, "date": entry.Date}).
					Warnf("summed hour tokens exceed %d, clamped", maxHours)
				diags = append(diags, models.Diagnostic{
					Kind:    models.DiagHoursClamped,
					Sheet:   sheet.Name(),
					Row:     weekRow,
					Message: fmt.Sprintf("%s: summed hours clamped to %d", entry.Date, maxHours),
				})
			}
			entries = append(entries, entry)
		}
	}
	return entries, diags
}

// BuildEntry builds the entry for one weekday of the week starting at
// weekRow. ok is false when the cell pair does not hold a schedule day.
func (p *Parser) BuildEntry(sheet workbook.Sheet, weekRow int, day DayColumn) (models.ClassEntry, bool) {
	entry, _, ok := p.buildEntry(sheet, weekRow, day)
	return entry, ok
}

func (p *Parser) buildEntry(sheet workbook.Sheet, weekRow int, day DayColumn) (models.ClassEntry, Extraction, bool) {
	dateCell := sheet.Cell(weekRow, day.DateCol)
	if !IsScheduleDate(dateCell) {
		return models.ClassEntry{}, Extraction{}, false
	}
	classCell := sheet.Cell(weekRow, day.ClassCol)
	if classCell.Kind != workbook.Text {
		return models.ClassEntry{}, Extraction{}, false
	}
	className := NormalizeClassName(classCell.Text)
	if className == "" {
		return models.ClassEntry{}, Extraction{}, false
	}

	holiday := IsHolidayName(className)
	className = StripHourSuffix(className)

	var ext Extraction
	if !holiday {
		ext = ExtractInstructorsAndHours(sheet, weekRow, day, p.defaultHours)
		if ext.Source == HoursFromDefault && ext.Instructor != "" {
			p.log.WithFields(logrus.Fields{"sheet": sheet.Name(), "row": weekRow, "instructor": ext.Instructor}).
				Debugf("no hour evidence, using default %dh", ext.Hours)
		}
	}

	// startTime was validated by New.
	endTime, _ := CalculateEndTime(p.startTime, ext.Hours)
	entry := models.ClassEntry{
		Date:       dateCell.Time.Format(dateLayout),
		ClassName:  className,
		Instructor: ext.Instructor,
		Hours:      ext.Hours,
		StartTime:  p.startTime,
		EndTime:    endTime,
		IsHoliday:  holiday,
	}
	p.log.WithFields(logrus.Fields{"sheet": sheet.Name(), "date": entry.Date}).
		Debugf("%s | %s | %dh", entry.ClassName, entry.Instructor, entry.Hours)
	return entry, ext, true
}

// NormalizeClassName collapses all whitespace runs, including newlines
// and tabs, into single spaces and trims the result.
func NormalizeClassName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripHourSuffix removes a trailing " Nh" annotation from a class name.
func StripHourSuffix(name string) string {
	return trailingHours.ReplaceAllString(name, "")
}
