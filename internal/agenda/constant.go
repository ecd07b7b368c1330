package agenda

import "regexp"

const (
	logPrefix = "internal.agenda"

	// DomainName identifies the agenda domain in routes and logs.
	DomainName = "agenda"
)

// Command verbs. Mutating verbs only count at the start of the utterance.
var (
	deleteRe = regexp.MustCompile(`(?i)^(?:verwijder|wis|schrap|annuleer|delete|remove|cancel)\b\s*(.*)$`)
	renameRe = regexp.MustCompile(`(?i)^(?:hernoem|rename)\b\s*(.+?)(?:\s+(?:naar|tot|to|as)\s+(.+))?$`)
	updateRe = regexp.MustCompile(`(?i)^(?:verplaats|verschuif|wijzig|verander|move|reschedule|change)\b\s*(.+?)(?:\s+(?:naar|to|into)\s+(.+))?$`)
	createRe = regexp.MustCompile(`(?i)^(?:plan|zet|voeg|maak|add|schedule|create|book|put)\b\s*(.*)$`)
	listRe   = regexp.MustCompile(`(?i)\b(?:agenda|calendar|kalender|afspraken|appointments|planning|schedule)\b`)

	// agendaCueRe must match before a mutating verb counts; Dutch
	// compounds such as "tandartsafspraak" are matched inside words.
	agendaCueRe = regexp.MustCompile(`(?i)afspra(?:ak|ken)|agenda|kalender|\b(?:calendar|appointments?|events?|evenement(?:en)?|meetings?|vergadering(?:en)?|items?)\b`)
)

// Title and reference cleanup.
var (
	leadingArticlesRe = regexp.MustCompile(`(?i)^(?:(?:de|het|een|mijn|m'n|the|a|an|my)\s+)+`)
	titleStopRe       = regexp.MustCompile(`(?i)\b(?:(?:the\s+)?day after tomorrow|vandaag|morgen\w*|overmorgen|gisteren|today|tomorrow|tonight|yesterday|vanavond|vanmiddag|vanochtend|vanmorgen|vannacht|om|at|tussen|between|on|op|toe|this|deze|next|volgende|maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\b(?:van|vanaf|from|in|over)\s+\d|\b(?:in|to|into|naar|uit|from)\s+(?:mijn|m'n|de|my|the)\s+(?:agenda|calendar|kalender)\b|\b\d{1,2}[:.]\d{2}\b`)
	trailingPrepRe    = regexp.MustCompile(`(?i)\s+(?:van|vanaf|from|of|met|with|voor|for)$`)
	demonstrativesRe  = regexp.MustCompile(`(?i)^(?:(?:die|dat|deze|dit|that|this|these|those)\s+)+`)

	// namedTitleRe finds a title introduced by "called", "genaamd" or a colon.
	namedTitleRe  = regexp.MustCompile(`(?i)(?:\b(?:called|named|titled|genaamd|getiteld|met (?:de )?titel|with (?:the )?title)|:)\s+(.+)$`)
	quotedTitleRe = regexp.MustCompile(`["“”]([^"“”]+)["“”]|(?:^|\s)'([^']+)'(?:[\s.,!?]|$)|‘([^’]+)’`)
)

// vagueRefs name no particular item on their own.
var vagueRefs = map[string]bool{
	"it": true, "het": true, "die": true, "dat": true, "deze": true, "dit": true, "hem": true, "ze": true,
	"that": true, "this": true, "these": true, "those": true, "them": true, "one": true, "iets": true, "something": true,
	"afspraak": true, "afspraken": true, "appointment": true, "appointments": true, "event": true, "events": true,
	"evenement": true, "item": true, "items": true, "agendapunt": true, "agenda-item": true,
}

// Clarifications.
const (
	askUpdateItem = "Which item should I update?"
	askDeleteItem = "Which item should I delete?"
	askTitle      = "What should I call it?"
	askWhen       = "When should it take place?"
	askChange     = "What should I change about it?"
)

// ModelInstructions is the fixed instruction block for the model extractor.
const ModelInstructions = `You convert Dutch or English agenda commands into a JSON intent.

Rules:
- Answer with exactly one JSON object and nothing else.
- "version" is always "agenda.intent.v1".
- Pick "intentKind" from the list below: "agenda.list" to look at the agenda, "agenda.create" for a new item, "agenda.update" to move or rename an item, "agenda.delete" to remove one.
- "title" is the name of a new item or the new name on rename. "itemRef" is how the user refers to an existing item. A bare pronoun ("it", "die") is no itemRef.
- Never invent titles, items, dates or times.
- Times are "HH:MM" (24h). "date" is "YYYY-MM-DD" and only for explicit calendar dates.
- dateTimeHint is "now" or a day optionally followed by "@HH:MM". A day is "today", "tomorrow", "yesterday", "day after tomorrow", an English weekday ("friday"), "next friday" or "in N days|weeks|months". Use "date" for any other day.
- If a required slot is unknown, list it in "missing" and ask one short question in "clarification".
- confidence is your certainty between 0 and 1.

Shape:
{"version":"agenda.intent.v1","intentKind":"...","confidence":0.0,"isFollowUp":false,
 "slots":{"title":"","itemRef":"","date":"","fromTime":"","toTime":"","dateTimeHint":""},
 "missing":[],"clarification":""}
Leave out slots you do not use.

Examples:
User: "zet tandarts morgen om 10:30 in mijn agenda"
{"version":"agenda.intent.v1","intentKind":"agenda.create","confidence":0.92,"isFollowUp":false,"slots":{"title":"tandarts","dateTimeHint":"tomorrow@10:30"},"missing":[],"clarification":""}
User: "what do I have on 2024-06-03?"
{"version":"agenda.intent.v1","intentKind":"agenda.list","confidence":0.9,"isFollowUp":false,"slots":{"date":"2024-06-03"},"missing":[],"clarification":""}
User: "cancel it"
{"version":"agenda.intent.v1","intentKind":"agenda.delete","confidence":0.55,"isFollowUp":true,"slots":{},"missing":["itemRef"],"clarification":"Which item should I delete?"}

Intent kinds and the arguments they lead to:
`
