// Package timetable extracts class schedules from calendar-template workbooks.
package timetable

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

const (
	// DefaultStartTime is the start of a class day.
	DefaultStartTime = "09:00"
	// DefaultHours is the class length used when a day has no hour evidence.
	DefaultHours = 8
)

// Options configures parsing.
type Options struct {
	// StartTime is the HH:MM start applied to every entry.
	StartTime string
	// DefaultHours is used when no hours are found under a class; 1 to 12.
	DefaultHours int
	// Logger receives progress and warnings. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{
		StartTime:    DefaultStartTime,
		DefaultHours: DefaultHours,
	}
}

// Validate checks the start time and default hours.
func (o Options) Validate() error {
	if !parser.ValidTime(o.StartTime) {
		return fmt.Errorf("%w: start time %q is not HH:MM", ErrInvalidOptions, o.StartTime)
	}
	if o.DefaultHours < 1 || o.DefaultHours > 12 {
		return fmt.Errorf("%w: default hours %d outside 1-12", ErrInvalidOptions, o.DefaultHours)
	}
	return nil
}

func (o Options) parser() (*parser.Parser, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return parser.New(parser.Settings{
		StartTime:    o.StartTime,
		DefaultHours: o.DefaultHours,
		Log:          o.Logger,
	})
}
