package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetRe = regexp.MustCompile(`^(?:in|over) (\d+) ([a-z]+)$`)
	clockRe  = regexp.MustCompile(`^([01]?\d|2[0-3])[:.]([0-5]\d)$`)
)

// offsetUnits maps a unit word to the (months, days) it adds per step.
var offsetUnits = map[string][2]int{
	"day": {0, 1}, "days": {0, 1}, "dag": {0, 1}, "dagen": {0, 1},
	"week": {0, 7}, "weeks": {0, 7}, "weken": {0, 7},
	"month": {1, 0}, "months": {1, 0}, "maand": {1, 0}, "maanden": {1, 0},
}

var nextPrefixes = []string{"next ", "volgende ", "komende "}

// Parser resolves English and Dutch relative day expressions in one
// timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for an IANA timezone such as
// "Europe/Amsterdam".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a day expression relative to now and returns the start of
// that day. It understands day words ("morgen"), offsets ("in 2 weeks",
// "over 3 dagen"), "next <weekday>" and a bare weekday, which is the
// upcoming one with today included. Anything else is ErrUnknownHint.
func (p *Parser) Parse(relative string, now time.Time) (time.Time, error) {
	s := normalize(relative)

	if offset, ok := dayWords[s]; ok {
		return p.startOfDay(now.AddDate(0, 0, offset)), nil
	}
	if m := offsetRe.FindStringSubmatch(s); m != nil {
		return p.addOffset(m[1], m[2], now)
	}
	if day, ok := cutAnyPrefix(s, nextPrefixes...); ok {
		return p.nextWeekday(day, now)
	}
	if target, ok := weekdays[s]; ok {
		ahead := (int(target) - int(now.In(p.location).Weekday()) + 7) % 7
		return p.startOfDay(now.AddDate(0, 0, ahead)), nil
	}
	if _, ok := cutAnyPrefix(s, "in ", "over "); ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDuration, relative)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownHint, relative)
}

func (p *Parser) addOffset(amount, unit string, now time.Time) (time.Time, error) {
	step, ok := offsetUnits[unit]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, unit)
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}
	return p.startOfDay(now.AddDate(0, n*step[0], n*step[1])), nil
}

// nextWeekday is the first matching weekday strictly after today.
func (p *Parser) nextWeekday(day string, now time.Time) (time.Time, error) {
	target, ok := weekdays[day]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	ahead := (int(target) - int(now.In(p.location).Weekday()) + 6) % 7
	return p.startOfDay(now.AddDate(0, 0, ahead+1)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(p.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location)
}

// StartOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// WeekBounds returns the starts of Monday and Sunday of t's ISO week.
func (p *Parser) WeekBounds(t time.Time) (time.Time, time.Time) {
	day := p.startOfDay(t)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -sinceMonday)
	return monday, monday.AddDate(0, 0, 6)
}

// At returns day (any time on it) at the HH:MM clock in the parser's
// timezone.
func (p *Parser) At(day time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := day.In(p.location).Date()
	return time.Date(y, mo, d, h, m, 0, 0, p.location), nil
}

// ParseClock parses "HH:MM" or "H.MM" into hour and minute.
func ParseClock(clock string) (int, int, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return h, mm, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func cutAnyPrefix(s string, prefixes ...string) (string, bool) {
	for _, prefix := range prefixes {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return s, false
}
