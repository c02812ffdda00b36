package models

// Course wraps parsed entries into a storable document.
type Course struct {
	ID               string       `json:"id"`
	Type             string       `json:"type"`
	Name             string       `json:"name"`
	Color            string       `json:"color"`
	FileName         string       `json:"file_name"`
	UploadedAt       string       `json:"uploaded_at"`
	DefaultStartTime string       `json:"default_start_time"`
	EntryCount       int          `json:"entry_count"`
	Entries          []ClassEntry `json:"entries,omitempty"`
}

// Stats summarizes a list of entries.
type Stats struct {
	TotalClasses  int            `json:"total_classes"`
	TotalHolidays int            `json:"total_holidays"`
	TotalHours    int            `json:"total_hours"`
	DateRange     string         `json:"date_range"`
	Instructors   map[string]int `json:"instructors"`
}
