package datemath

import (
	"errors"
	"time"
)

var (
	ErrInvalidDuration = errors.New("invalid duration format")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrInvalidClock    = errors.New("invalid clock time")
	ErrEmptyHint       = errors.New("empty date/time hint")
	ErrUnknownHint     = errors.New("unknown date/time hint")
)

// Resolution is an absolute time resolved from a symbolic hint.
type Resolution struct {
	Time time.Time
	// HasClock is true when the hint named an explicit time of day.
	HasClock bool
}

// dayWords maps day words to their offset from today.
var dayWords = map[string]int{
	"today":      0,
	"vandaag":    0,
	"tomorrow":   1,
	"morgen":     1,
	"yesterday":  -1,
	"gisteren":   -1,
	"overmorgen": 2,

	"day after tomorrow": 2,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"maandag":   time.Monday,
	"dinsdag":   time.Tuesday,
	"woensdag":  time.Wednesday,
	"donderdag": time.Thursday,
	"vrijdag":   time.Friday,
	"zaterdag":  time.Saturday,
	"zondag":    time.Sunday,
}
