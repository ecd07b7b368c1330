package rail

import "regexp"

const (
	logPrefix = "internal.rail"

	// DomainName identifies the rail domain in routes and logs.
	DomainName = "rail"
)

// Board vocabulary. Nouns only, so route verbs such as "vertrekken" do not
// trigger the board rule.
var (
	departureBoardRe = regexp.MustCompile(`(?i)\b(?:vertrekbord|vertrekstaat|vertrektijden|vertrekkende treinen|departures|departure board|departure times)\b`)
	arrivalBoardRe   = regexp.MustCompile(`(?i)\b(?:aankomstbord|aankomsttijden|aankomsten|aankomende treinen|arrivals|arrival board|arrival times)\b`)
)

// Station phrase prefixes, tried in order. The candidate is the text after
// each occurrence.
var stationPrefixRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bstation\s+`),
	regexp.MustCompile(`(?i)\b(?:van|vanaf|from)\s+`),
	regexp.MustCompile(`(?i)\b(?:bij|at|in|op|voor|for)\s+`),
	regexp.MustCompile(`(?i)\b(?:vertrekbord|vertrekstaat|vertrektijden|departures|departure board|departure times|aankomstbord|aankomsttijden|aankomsten|arrivals|arrival board|arrival times)\s+`),
}

// Route signals. The broad signal is checked before the narrower captures.
var (
	routeSignalRe  = regexp.MustCompile(`(?i)\b(?:van|vanaf|from)\b.+\b(?:naar|to)\b|\b(?:tussen|between)\b.+\b(?:en|and)\b`)
	routeFromToRe  = regexp.MustCompile(`(?i)\b(?:van|vanaf|from)\s+(.+?)\s+(?:naar|to)\s+(.+)`)
	routeBetweenRe = regexp.MustCompile(`(?i)\b(?:tussen|between)\s+(.+?)\s+(?:en|and)\s+(.+)`)
	viaRe          = regexp.MustCompile(`(?i)\bvia\s+(.+)`)
)

// Keys that carry a station name in a previous action output.
var (
	contextStationKeys       = []string{"station", "stationName", "stationText"}
	contextStationObjectKeys = []string{"name", "label", "code"}
)

// Clarifications.
const (
	askStationDepartures = "Which station do you want the departures for?"
	askStationArrivals   = "Which station do you want the arrivals for?"
	askStation           = "Which station do you mean?"
	askFrom              = "Where are you travelling from?"
	askTo                = "Where do you want to go?"
	askWindow            = "Between which times should I look?"
	askStationQuery      = "Which station are you looking for?"
	askTrip              = "Which trip do you mean?"
	askJourney           = "Which train do you mean?"
	askDisruption        = "Which disruption do you mean?"
)

// ModelInstructions is the fixed instruction block for the model extractor.
const ModelInstructions = `You convert Dutch or English rail travel questions into a JSON intent.

Rules:
- Answer with exactly one JSON object and nothing else.
- "version" is always "rail.intent.v1".
- Pick "intentKind" from the list below. Use "trips.search" for journeys between two places, a board kind when the user asks what leaves or arrives at one station.
- Only fill slots the user actually mentioned. Never invent station names, dates or times.
- Station and place names go in stationText, fromText, toText or viaText exactly as written, without words like "today" or "please".
- Times are "HH:MM" (24h). "date" is "YYYY-MM-DD" and only for explicit calendar dates.
- dateTimeHint is "now" or a day optionally followed by "@HH:MM". A day is "today", "tomorrow", "yesterday", "day after tomorrow", an English weekday ("friday"), "next friday" or "in N days|weeks|months". Use "date" for any other day.
- requested.hard is only for explicit demands ("direct only", "no transfers"). Preferences go in requested.soft.rankBy.
- Set isFollowUp to true when the message only makes sense together with the previous turn.
- If a required slot is unknown, list it in "missing" and ask one short question in "clarification".
- confidence is your certainty between 0 and 1.

Shape:
{"version":"rail.intent.v1","intentKind":"...","confidence":0.0,"isFollowUp":false,
 "slots":{"stationText":"","fromText":"","toText":"","viaText":"","date":"","fromTime":"","toTime":"","ctxRecon":"","dateTimeHint":"","journeyId":""},
 "requested":{"hard":{"directOnly":<bool>,"maxTransfers":<int>,"avoidStations":[<station>]},"soft":{"rankBy":[<"fewest_transfers"|"fastest"|"earliest_departure"|"earliest_arrival">]}},
 "missing":[],"clarification":""}
Leave out slots and constraints you do not use.

Examples:
User: "hoe kom ik morgen om 9:00 van Leiden naar Zwolle zonder overstap"
{"version":"rail.intent.v1","intentKind":"trips.search","confidence":0.93,"isFollowUp":false,"slots":{"fromText":"Leiden","toText":"Zwolle","dateTimeHint":"tomorrow@09:00"},"requested":{"hard":{"directOnly":true,"maxTransfers":0}},"missing":[],"clarification":""}
User: "zijn er storingen rond Amersfoort?"
{"version":"rail.intent.v1","intentKind":"disruptions.by_station","confidence":0.9,"isFollowUp":false,"slots":{"stationText":"Amersfoort"},"requested":{},"missing":[],"clarification":""}
User: "and the second one?"
{"version":"rail.intent.v1","intentKind":"trips.detail","confidence":0.6,"isFollowUp":true,"slots":{},"requested":{},"missing":["ctxRecon"],"clarification":"Which trip do you mean?"}

Intent kinds and the arguments they lead to:
`
