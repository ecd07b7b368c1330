package heuristics

import "regexp"

// MaxPlaceLen caps extracted place names.
const MaxPlaceLen = 120

// stopWords end a place candidate: everything from the first one on is noise.
var stopWords = map[string]bool{
	// time and window
	"tussen": true, "between": true, "om": true, "at": true, "rond": true, "around": true,
	"tot": true, "until": true, "till": true, "na": true, "after": true, "before": true, "on": true,
	"vandaag": true, "today": true, "morgen": true, "tomorrow": true, "gisteren": true, "yesterday": true,
	"overmorgen": true, "nu": true, "now": true, "tonight": true, "vanavond": true, "vanochtend": true,
	"vanmorgen": true, "vanmiddag": true, "morgenochtend": true, "morgenmiddag": true, "morgenavond": true,
	"this": true, "deze": true, "next": true, "volgende": true, "komende": true,
	"maandag": true, "dinsdag": true, "woensdag": true, "donderdag": true, "vrijdag": true, "zaterdag": true, "zondag": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true, "saturday": true, "sunday": true,
	// commands and politeness
	"laat": true, "toon": true, "show": true, "zien": true, "geef": true, "give": true, "please": true,
	"graag": true, "alsjeblieft": true, "alstublieft": true, "aub": true, "svp": true, "thanks": true, "bedankt": true,
	// route words
	"naar": true, "to": true, "via": true, "vanaf": true, "from": true, "en": true, "and": true,
	"met": true, "with": true, "zonder": true, "without": true, "alleen": true, "only": true,
	"direct": true, "rechtstreeks": true, "nonstop": true, "liefst": true, "prefer": true,
	// board and travel nouns
	"vertrekbord": true, "vertrekstaat": true, "vertrektijden": true, "vertrekkende": true, "departures": true,
	"departure": true, "aankomstbord": true, "aankomsttijden": true, "aankomsten": true, "aankomende": true,
	"arrivals": true, "arrival": true, "trein": true, "treinen": true, "train": true, "trains": true,
	"treinopties": true, "opties": true, "options": true, "reis": true, "trip": true,
	// months
	"januari": true, "january": true, "februari": true, "february": true, "maart": true, "march": true,
	"april": true, "mei": true, "juni": true, "june": true, "juli": true, "july": true,
	"augustus": true, "august": true, "september": true, "oktober": true, "october": true,
	"november": true, "december": true,
}

// dateLeadWords end a place only when a date follows them, so "Bergen op
// Zoom" survives while "Zwolle op 24 december" does not.
var dateLeadWords = map[string]bool{"op": true, "in": true, "over": true, "per": true}

var (
	sentenceBreakRe = regexp.MustCompile(`[.?!,;](?:\s|$)`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	letterRe        = regexp.MustCompile(`\p{L}`)
	leadingClockRe  = regexp.MustCompile(`^\d{1,2}[:.]\d{2}\b`)
	clockRe         = regexp.MustCompile(`\b([01]?\d|2[0-3])[:.]([0-5]\d)\b`)
	hourUurRe       = regexp.MustCompile(`\b([01]?\d|2[0-3])\s*uur\b`)
	dateTokenRe     = regexp.MustCompile(`^\d{1,4}(?:[-/]\d{1,2}(?:[-/]\d{2,4})?)?(?:st|nd|rd|th|e|ste|de)?$`)
)

const (
	quoteChars    = "\"'`“”‘’«»()[]{}<>"
	trailingPunct = ".,;:!?-"
	clockPattern  = `(\d{1,2}[:.]\d{2})`
)

// Time window phrases.
var windowRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:tussen|between)\s+` + clockPattern + `\s*(?:uur\s+)?(?:en|and|-)\s*` + clockPattern),
	regexp.MustCompile(`(?i)\b(?:van|vanaf|from)\s+` + clockPattern + `\s*(?:uur\s+)?(?:tot|to|until|till|-)\s*` + clockPattern),
}

// Directness markers.
var (
	strictPhraseRe = regexp.MustCompile(`(?i)\b(?:no (?:transfers?|changes)|without (?:any )?(?:transfers?|changes)|direct only|only direct|must be direct|zonder overstap(?:pen)?|geen overstap(?:pen)?|alleen direct|moet direct|alleen rechtstreeks)\b`)
	restrictiveRe  = regexp.MustCompile(`(?i)\b(?:only|must|without|no|alleen|moet|moeten|zonder|geen)\b`)
	transferWordRe = regexp.MustCompile(`(?i)\b(?:transfers?|changes|overstap|overstappen|overstapjes)\b`)
	directWordRe   = regexp.MustCompile(`(?i)\b(?:direct|directe|rechtstreeks|rechtstreekse|nonstop|non-stop)\b`)
	preferPhraseRe = regexp.MustCompile(`(?i)\b(?:(?:fewest|least|minimal|minimum) (?:transfers?|changes)|minst(?:e)? overstap(?:pen)?|zo min mogelijk overstap(?:pen)?)\b`)
	softMarkerRe   = regexp.MustCompile(`(?i)\b(?:prefer|preferably|preferred|maybe|perhaps|if possible|ideally|liefst|liever|bij voorkeur|graag|misschien|indien mogelijk)\b`)
)

// Date/time hint vocabulary.
var (
	compoundDayRe = regexp.MustCompile(`(?i)\b(?:morgen\s?(ochtend|middag|avond)|tomorrow (morning|afternoon|evening|night))\b`)
	daypartRe     = regexp.MustCompile(`(?i)\b(?:this (morning|afternoon|evening)|(tonight)|(vanochtend|vanmorgen|vanmiddag|vanavond|vannacht))\b`)
	todayRe       = regexp.MustCompile(`(?i)\b(?:today|vandaag)\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\b(?:tomorrow|morgen)\b`)
	yesterdayRe   = regexp.MustCompile(`(?i)\b(?:yesterday|gisteren)\b`)
	nowRe         = regexp.MustCompile(`(?i)\b(?:now|right now|nu|meteen)\b`)

	dayAfterTomorrowRe = regexp.MustCompile(`(?i)\b(?:overmorgen|day after tomorrow)\b`)
	weekdayRe          = regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`)
	nextWeekdayRe      = regexp.MustCompile(`(?i)\b(?:next|volgende|komende)\s+(` + weekdayAlt + `)\b`)
	offsetRe           = regexp.MustCompile(`(?i)\b(?:in|over)\s+(\d{1,3})\s+(dagen|dag|days?|weken|weeks?|week|maanden|maand|months?)\b`)

	// calendarDateRe finds explicit dates: "24 december", "3rd of may",
	// "december 24", "24-12", "12/05/2025", "2025-12-24". A month name
	// before a clock ("Jan 12:00") is no date.
	calendarDateRe = regexp.MustCompile(`(?i)` +
		`\b\d{1,2}(?:st|nd|rd|th|e|ste|de)?\s+(?:of\s+)?(?:` + monthAlt + `)\b` +
		`|\b(?:` + monthFullAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:[^:.\d]|$)` +
		`|\b\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?\b` +
		`|\b\d{4}-\d{2}-\d{2}\b`)
)

const (
	weekdayAlt   = `maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag|monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	monthFullAlt = `januari|january|februari|february|maart|march|april|mei|may|juni|june|juli|july|augustus|august|september|oktober|october|november|december`
	monthAlt     = `januari|january|jan|februari|february|feb|maart|march|mar|april|apr|mei|may|juni|june|jun|juli|july|jul|augustus|august|aug|september|sept|sep|oktober|october|okt|oct|november|nov|december|dec`
)

// weekdayNames maps Dutch and English weekdays to the English hint token.
var weekdayNames = map[string]string{
	"maandag": "monday", "dinsdag": "tuesday", "woensdag": "wednesday", "donderdag": "thursday",
	"vrijdag": "friday", "zaterdag": "saturday", "zondag": "sunday",
	"monday": "monday", "tuesday": "tuesday", "wednesday": "wednesday", "thursday": "thursday",
	"friday": "friday", "saturday": "saturday", "sunday": "sunday",
}

// offsetUnits maps offset units to the English plural the hint carries.
var offsetUnits = map[string]string{
	"dag": "days", "dagen": "days", "day": "days", "days": "days",
	"week": "weeks", "weken": "weeks", "weeks": "weeks",
	"maand": "months", "maanden": "months", "month": "months", "months": "months",
}

// Canonical clock times for named dayparts.
var daypartClock = map[string]string{
	"morning":    "08:00",
	"ochtend":    "08:00",
	"vanochtend": "08:00",
	"vanmorgen":  "08:00",
	"afternoon":  "14:00",
	"middag":     "14:00",
	"vanmiddag":  "14:00",
	"evening":    "19:00",
	"avond":      "19:00",
	"vanavond":   "19:00",
	"tonight":    "21:00",
	"night":      "21:00",
	"vannacht":   "21:00",
}

// Hint day tokens.
const (
	HintToday            = "today"
	HintTomorrow         = "tomorrow"
	HintYesterday        = "yesterday"
	HintDayAfterTomorrow = "day after tomorrow"
	HintNow              = "now"
)
