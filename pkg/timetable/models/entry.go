// Package models defines data structures for timetable extraction.
package models

// ClassEntry represents one scheduled day of a course.
type ClassEntry struct {
	// ID is assigned by the storage side; the parser never sets it.
	ID string `json:"id,omitempty" expr:"id"`
	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date" expr:"date"`
	// ClassName is the normalized class label.
	ClassName string `json:"class_name" expr:"class_name"`
	// Instructor holds zero or more names joined by commas.
	Instructor string `json:"instructor" expr:"instructor"`
	// Hours is the class length in hours (0 for holidays).
	Hours int `json:"hours" expr:"hours"`
	// StartTime is an HH:MM 24-hour string.
	StartTime string `json:"start_time" expr:"start_time"`
	// EndTime is derived from StartTime and Hours.
	EndTime string `json:"end_time" expr:"end_time"`
	// IsHoliday marks a non-instructional calendar day.
	IsHoliday bool `json:"is_holiday" expr:"is_holiday"`
}
