package parser

import "github.com/ukaji3/timetable-go/pkg/timetable/workbook"

// HoursSource tells which evidence fixed an entry's hours.
type HoursSource int

const (
	// HoursFromCell means a numeric cell in the detail rows.
	HoursFromCell HoursSource = iota
	// HoursFromTokens means the sum of "Nh" text tokens.
	HoursFromTokens
	// HoursFromDefault means no evidence was found.
	HoursFromDefault
)

func (s HoursSource) String() string {
	switch s {
	case HoursFromCell:
		return "cell"
	case HoursFromTokens:
		return "tokens"
	default:
		return "default"
	}
}

// hourEvidence is what a detail window says about class length.
type hourEvidence struct {
	cell    int // first numeric hours cell, 0 when absent
	tokens  []int
	clamped bool
}

// hoursTier resolves hours from one kind of evidence or declines.
type hoursTier struct {
	source  HoursSource
	resolve func(ev *hourEvidence, fallback int) (int, bool)
}

// hoursTiers are evaluated in priority order.
var hoursTiers = []hoursTier{
	{HoursFromCell, cellHours},
	{HoursFromTokens, tokenHours},
	{HoursFromDefault, defaultHours},
}

func cellHours(ev *hourEvidence, _ int) (int, bool) {
	return ev.cell, ev.cell > 0
}

func tokenHours(ev *hourEvidence, _ int) (int, bool) {
	if len(ev.tokens) == 0 {
		return 0, false
	}
	sum := 0
	for _, h := range ev.tokens {
		sum += h
	}
	if sum > maxHours {
		ev.clamped = true
		sum = maxHours
	}
	return sum, true
}

func defaultHours(_ *hourEvidence, fallback int) (int, bool) {
	return fallback, true
}

func resolveHours(ev *hourEvidence, fallback int) (int, HoursSource) {
	for _, tier := range hoursTiers {
		if h, ok := tier.resolve(ev, fallback); ok {
			return h, tier.source
		}
	}
	return fallback, HoursFromDefault
}

// Extraction is what the detail rows of one weekday yield.
type Extraction struct {
	// Instructor is the comma-joined, de-duplicated name list.
	Instructor string
	Hours      int
	Source     HoursSource
	// Clamped is set when summed hour tokens exceeded the maximum.
	Clamped bool
}

// ExtractInstructorsAndHours scans the rows below weekRow in the date and
// class columns of day, row by row and left to right. The first numeric
// hours cell fixes the hours; otherwise "Nh" tokens are summed; otherwise
// defaultHrs applies. Names from every text cell are collected.
func ExtractInstructorsAndHours(sheet workbook.Sheet, weekRow int, day DayColumn, defaultHrs int) Extraction {
	var (
		names nameList
		ev    hourEvidence
	)
	cols := []int{day.DateCol, day.ClassCol}
	if day.ClassCol < day.DateCol {
		cols[0], cols[1] = day.ClassCol, day.DateCol
	}
	if cols[0] == cols[1] {
		cols = cols[:1]
	}

	for offset := 1; offset <= detailRows; offset++ {
		for _, col := range cols {
			v := sheet.Cell(weekRow+offset, col)
			switch {
			case Classify(v) == KindHours:
				if ev.cell == 0 {
					ev.cell, _ = HoursValue(v)
				}
			case v.Kind == workbook.Text:
				names.add(ExtractNames(v.Text)...)
				ev.tokens = append(ev.tokens, hourTokens(v.Text)...)
			}
		}
	}

	hours, source := resolveHours(&ev, defaultHrs)
	return Extraction{
		Instructor: names.String(),
		Hours:      hours,
		Source:     source,
		Clamped:    ev.clamped,
	}
}
