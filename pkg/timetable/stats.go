package timetable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Summarize counts classes, holidays and hours, and tallies how many
// classes each instructor teaches. Co-taught classes count once for
// every instructor.
func Summarize(entries []models.ClassEntry) models.Stats {
	stats := models.Stats{Instructors: make(map[string]int)}
	var dates []string

	for _, e := range entries {
		if e.Date != "" {
			dates = append(dates, e.Date)
		}
		if e.IsHoliday {
			stats.TotalHolidays++
			continue
		}
		stats.TotalClasses++
		stats.TotalHours += e.Hours
		for _, name := range strings.Split(e.Instructor, ",") {
			if name = strings.TrimSpace(name); name != "" {
				stats.Instructors[name]++
			}
		}
	}

	if len(dates) > 0 {
		sort.Strings(dates)
		stats.DateRange = fmt.Sprintf("%s ~ %s", dates[0], dates[len(dates)-1])
	}
	return stats
}
