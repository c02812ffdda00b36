package models

// DiagnosticKind classifies a non-fatal parse condition.
type DiagnosticKind string

const (
	// DiagInfoSheet is reported when an info sheet was selected and skipped.
	DiagInfoSheet DiagnosticKind = "info_sheet_skipped"
	// DiagSheetNotFound is reported when a selected sheet is absent.
	DiagSheetNotFound DiagnosticKind = "sheet_not_found"
	// DiagNoWeekRows is reported when week detection fell back to default rows.
	DiagNoWeekRows DiagnosticKind = "no_week_rows"
	// DiagHoursClamped is reported when summed hour tokens exceeded the maximum.
	DiagHoursClamped DiagnosticKind = "hours_clamped"
	// DiagNoEntries is reported when the whole parse produced nothing.
	DiagNoEntries DiagnosticKind = "no_entries"
)

// Diagnostic is a warning collected during parsing.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Sheet   string         `json:"sheet,omitempty"`
	Row     int            `json:"row,omitempty"`
	Message string         `json:"message"`
}

// ParseResult is the outcome of one parse invocation.
type ParseResult struct {
	// Entries are ordered by sheet, week row, then weekday.
	Entries []ClassEntry `json:"entries"`
	// EntryCount is len(Entries).
	EntryCount int `json:"entry_count"`
	// Diagnostics lists sheet and row level warnings.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Empty reports whether no entries were produced.
func (r *ParseResult) Empty() bool {
	return r == nil || len(r.Entries) == 0
}
