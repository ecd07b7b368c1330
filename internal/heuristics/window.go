package heuristics

import (
	"fmt"

	"intent-router/pkg/datemath"
)

// TimeWindow finds a "between HH:MM and HH:MM" or "from HH:MM to HH:MM"
// phrase and returns both bounds as zero-padded HH:MM.
func TimeWindow(text string) (string, string, bool) {
	for _, re := range windowRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		from, okFrom := NormalizeClock(m[1])
		to, okTo := NormalizeClock(m[2])
		if okFrom && okTo {
			return from, to, true
		}
	}
	return "", "", false
}

// NormalizeClock turns "9:05" or "18.00" into "09:05" / "18:00".
func NormalizeClock(s string) (string, bool) {
	h, m, err := datemath.ParseClock(s)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// FirstClock returns the first clock time mentioned in text ("18:30",
// "9.15" or "om 9 uur").
func FirstClock(text string) (string, bool) {
	if m := clockRe.FindStringSubmatch(text); m != nil {
		return NormalizeClock(m[1] + ":" + m[2])
	}
	if m := hourUurRe.FindStringSubmatch(text); m != nil {
		return NormalizeClock(m[1] + ":00")
	}
	return "", false
}
