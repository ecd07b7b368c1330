package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ResolveHint turns a symbolic date/time hint into an absolute time.
//
// Accepted forms: "now", a day word ("today", "tomorrow", "yesterday" or a
// Parse-able relative date) which keeps the clock of now, "<day>@HH:MM",
// and a bare "HH:MM" meaning today.
func (p *Parser) ResolveHint(hint string, now time.Time) (Resolution, error) {
	hint = normalize(hint)
	if hint == "" {
		return Resolution{}, ErrEmptyHint
	}
	now = now.In(p.location)

	if hint == "now" || hint == "nu" {
		return Resolution{Time: now}, nil
	}

	if day, clock, ok := strings.Cut(hint, "@"); ok {
		base, err := p.day(day, now)
		if err != nil {
			return Resolution{}, err
		}
		t, err := p.At(base, clock)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Time: t, HasClock: true}, nil
	}

	if _, _, err := ParseClock(hint); err == nil {
		t, err := p.At(now, hint)
		return Resolution{Time: t, HasClock: true}, err
	}

	base, err := p.day(hint, now)
	if err != nil {
		return Resolution{}, err
	}
	if _, ok := dayWords[hint]; ok {
		y, m, d := base.Date()
		return Resolution{Time: time.Date(y, m, d, now.Hour(), now.Minute(), 0, 0, p.location)}, nil
	}
	return Resolution{Time: base}, nil
}

// day is Parse with every failure reported as ErrUnknownHint.
func (p *Parser) day(s string, now time.Time) (time.Time, error) {
	t, err := p.Parse(s, now)
	if err != nil && !errors.Is(err, ErrUnknownHint) {
		return time.Time{}, fmt.Errorf("%w: %w", ErrUnknownHint, err)
	}
	return t, err
}
