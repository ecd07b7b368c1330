package heuristics

import (
	"strings"
)

// InferDateTimeHint returns a symbolic date/time hint for text:
// "<day>@HH:MM", a bare day, "now" or "". A day is one of today, tomorrow,
// yesterday, "day after tomorrow", a weekday, "next <weekday>" or
// "in N days|weeks|months", always in English so datemath resolves it.
//
// ok is false when text names a calendar date ("24 december", "12/05") that
// the hint grammar cannot carry; the caller must not guess a day then.
func InferDateTimeHint(text string) (string, bool) {
	if calendarDateRe.MatchString(text) {
		return "", false
	}

	day, clock := inferDay(text)
	if explicit, ok := FirstClock(text); ok {
		clock = explicit
		if day == "" {
			day = HintToday
		}
	}

	switch {
	case day != "" && clock != "":
		return day + "@" + clock, true
	case day != "":
		return day, true
	case nowRe.MatchString(text):
		return HintNow, true
	}
	return "", true
}

// inferDay finds the day expression of text and the daypart clock it
// implies, if any. More specific phrases are checked first.
func inferDay(text string) (string, string) {
	if dayAfterTomorrowRe.MatchString(text) {
		return HintDayAfterTomorrow, ""
	}
	if m := compoundDayRe.FindStringSubmatch(text); m != nil {
		return HintTomorrow, daypartClock[strings.ToLower(m[1]+m[2])]
	}
	if m := daypartRe.FindStringSubmatch(text); m != nil {
		return HintToday, daypartClock[strings.ToLower(m[1]+m[2]+m[3])]
	}
	if m := nextWeekdayRe.FindStringSubmatch(text); m != nil {
		return "next " + weekdayNames[strings.ToLower(m[1])], ""
	}
	if m := offsetRe.FindStringSubmatch(text); m != nil {
		return "in " + m[1] + " " + offsetUnits[strings.ToLower(m[2])], ""
	}
	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		return weekdayNames[strings.ToLower(m[1])], ""
	}
	switch {
	case tomorrowRe.MatchString(text):
		return HintTomorrow, ""
	case yesterdayRe.MatchString(text):
		return HintYesterday, ""
	case todayRe.MatchString(text):
		return HintToday, ""
	}
	return "", ""
}
