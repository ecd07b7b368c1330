package rail

import (
	"regexp"
	"strings"

	"intent-router/internal/heuristics"
	"intent-router/internal/intent"
)

// rule is one fast-path pattern family. match is a cheap signal check,
// extract does the capture and may still decline.
type rule struct {
	name    string
	match   func(text string) bool
	extract func(text string, tc intent.TurnContext) (intent.Intent, bool)
}

// Extractor is the deterministic rail fast path.
type Extractor struct {
	rules []rule
}

// NewExtractor creates the rail fast path with its rules in priority order.
func NewExtractor() *Extractor {
	return &Extractor{
		rules: []rule{
			{name: "board", match: matchBoard, extract: extractBoard},
			{name: "route", match: routeSignalRe.MatchString, extract: extractRoute},
		},
	}
}

// TryExtract returns the first rule's intent, or false when no rule applies.
func (e *Extractor) TryExtract(text string, tc intent.TurnContext) (intent.Intent, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return intent.Intent{}, false
	}
	for _, r := range e.rules {
		if !r.match(text) {
			continue
		}
		if in, ok := r.extract(text, tc); ok {
			in.Version = intent.VersionRail
			in.Confidence = intent.FastPathConfidence
			in.Utterance = text
			return in, true
		}
	}
	return intent.Intent{}, false
}

// RuleNames lists the rules in evaluation order.
func (e *Extractor) RuleNames() []string {
	names := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.name)
	}
	return names
}

func matchBoard(text string) bool {
	return departureBoardRe.MatchString(text) || arrivalBoardRe.MatchString(text)
}

func extractBoard(text string, tc intent.TurnContext) (intent.Intent, bool) {
	hint, ok := heuristics.InferDateTimeHint(text)
	if !ok {
		return intent.Intent{}, false
	}
	departures := departureBoardRe.MatchString(text)
	arrivals := arrivalBoardRe.MatchString(text) && !departures

	in := intent.Intent{Kind: intent.KindDeparturesList}
	ask := askStationDepartures
	if arrivals {
		in.Kind = intent.KindArrivalsList
		ask = askStationArrivals
	}

	if from, to, ok := heuristics.TimeWindow(text); ok {
		in.Kind = intent.KindDeparturesWindow
		in.Slots.FromTime = from
		in.Slots.ToTime = to
		ask = askStationDepartures
	}

	station := stationFromText(text)
	if station == "" {
		station = stationFromContext(tc)
		in.IsFollowUp = station != ""
	}
	if station == "" {
		in.Missing = []string{intent.SlotStationText}
		in.Clarification = ask
		return in, true
	}

	in.Slots.StationText = station
	if in.Kind != intent.KindDeparturesWindow {
		in.Slots.DateTimeHint = hint
	}
	return in, true
}

func stationFromText(text string) string {
	for _, re := range stationPrefixRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if place := placeCandidate(text[loc[1]:]); place != "" {
				return place
			}
		}
	}
	return ""
}

// placeCandidate cleans s and rejects anything that still carries a clock time.
func placeCandidate(s string) string {
	place := heuristics.CleanPlace(s)
	if place == "" {
		return ""
	}
	if _, hasClock := heuristics.FirstClock(place); hasClock {
		return ""
	}
	return place
}

func stationFromContext(tc intent.TurnContext) string {
	obj := tc.OutputObject()
	if obj == nil {
		return ""
	}
	for _, key := range contextStationKeys {
		switch v := obj[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			for _, inner := range contextStationObjectKeys {
				if s, ok := v[inner].(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			}
		}
	}
	return ""
}

func extractRoute(text string, _ intent.TurnContext) (intent.Intent, bool) {
	hint, ok := heuristics.InferDateTimeHint(text)
	if !ok {
		return intent.Intent{}, false
	}
	from, to, ok := capturePair(routeFromToRe, text)
	if !ok {
		from, to, ok = capturePair(routeBetweenRe, text)
	}
	if !ok {
		return intent.Intent{}, false
	}

	in := intent.Intent{
		Kind: intent.KindTripsSearch,
		Slots: intent.Slots{
			FromText:     from,
			ToText:       to,
			DateTimeHint: hint,
		},
	}
	if m := viaRe.FindStringSubmatch(text); m != nil {
		in.Slots.ViaText = placeCandidate(m[1])
	}

	requested := heuristics.ApplyDirectness(intent.Requested{}, heuristics.InferDirectness(text))
	if !requested.IsZero() {
		in.Requested = requested
	}
	return in, true
}

// capturePair tries every occurrence of the route phrase until both sides
// clean up to a place.
func capturePair(re *regexp.Regexp, text string) (string, string, bool) {
	for offset := 0; offset < len(text); {
		loc := re.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		start := offset + loc[0]
		if start == 0 || !isWordByte(text[start-1]) {
			from := placeCandidate(text[offset+loc[2] : offset+loc[3]])
			to := placeCandidate(text[offset+loc[4] : offset+loc[5]])
			if from != "" && to != "" {
				return from, to, true
			}
		}
		offset = start + 1
	}
	return "", "", false
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80
}
