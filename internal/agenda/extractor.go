package agenda

import (
	"regexp"
	"strings"

	"intent-router/internal/heuristics"
	"intent-router/internal/intent"
)

type rule struct {
	name     string
	re       *regexp.Regexp
	mutating bool // needs an agenda noun in the utterance
	extract  func(m []string, text string) (intent.Intent, bool)
}

// Extractor is the deterministic agenda fast path.
type Extractor struct {
	rules []rule
}

// NewExtractor creates the agenda fast path. Mutating commands are tried
// before the list rule so "delete my agenda item" never lists.
func NewExtractor() *Extractor {
	return &Extractor{
		rules: []rule{
			{name: "delete", re: deleteRe, mutating: true, extract: extractDelete},
			{name: "rename", re: renameRe, mutating: true, extract: extractRename},
			{name: "update", re: updateRe, mutating: true, extract: extractUpdate},
			{name: "create", re: createRe, mutating: true, extract: extractCreate},
			{name: "list", re: listRe, extract: extractList},
		},
	}
}

// TryExtract returns the first matching rule's intent. Agenda extraction
// never reads the previous turn. A rule that finds a day it cannot express
// declines, and so does the whole fast path.
func (e *Extractor) TryExtract(text string, _ intent.TurnContext) (intent.Intent, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return intent.Intent{}, false
	}
	for _, r := range e.rules {
		if r.mutating && !agendaCueRe.MatchString(text) {
			continue
		}
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		in, ok := r.extract(m, text)
		if !ok {
			return intent.Intent{}, false
		}
		in.Version = intent.VersionAgenda
		in.Confidence = intent.FastPathConfidence
		in.Utterance = text
		return in, true
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

func extractDelete(m []string, _ string) (intent.Intent, bool) {
	in := intent.Intent{Kind: intent.KindAgendaDelete}
	in.Slots.ItemRef = itemRef(m[1])
	if in.Slots.ItemRef == "" {
		in.Missing = []string{intent.SlotItemRef}
		in.Clarification = askDeleteItem
	}
	return in, true
}

func extractRename(m []string, _ string) (intent.Intent, bool) {
	in := intent.Intent{Kind: intent.KindAgendaUpdate}
	in.Slots.ItemRef = itemRef(m[1])
	in.Slots.Title = title(m[2])
	switch {
	case in.Slots.ItemRef == "":
		in.Missing = []string{intent.SlotItemRef}
		in.Clarification = askUpdateItem
	case in.Slots.Title == "":
		in.Missing = []string{intent.SlotTitle}
		in.Clarification = askTitle
	}
	return in, true
}

// extractUpdate reads the new moment from the whole utterance once a target
// phrase exists, so "move dentist tomorrow to 11:00" keeps its day.
func extractUpdate(m []string, text string) (intent.Intent, bool) {
	in := intent.Intent{Kind: intent.KindAgendaUpdate}
	in.Slots.ItemRef = itemRef(m[1])
	if strings.TrimSpace(m[2]) != "" {
		hint, ok := heuristics.InferDateTimeHint(text)
		if !ok {
			return intent.Intent{}, false
		}
		in.Slots.DateTimeHint = hint
		if from, to, ok := heuristics.TimeWindow(text); ok {
			in.Slots.FromTime, in.Slots.ToTime = from, to
		}
	}
	if in.Slots.ItemRef == "" {
		in.Missing = []string{intent.SlotItemRef}
		in.Clarification = askUpdateItem
	}
	return in, true
}

func extractCreate(m []string, text string) (intent.Intent, bool) {
	hint, ok := heuristics.InferDateTimeHint(text)
	if !ok {
		return intent.Intent{}, false
	}
	in := intent.Intent{Kind: intent.KindAgendaCreate}
	in.Slots.Title = title(m[1])
	in.Slots.DateTimeHint = hint
	if from, to, ok := heuristics.TimeWindow(text); ok {
		in.Slots.FromTime, in.Slots.ToTime = from, to
	}
	if in.Slots.Title == "" {
		in.Missing = []string{intent.SlotTitle}
		in.Clarification = askTitle
	}
	return in, true
}

func extractList(_ []string, text string) (intent.Intent, bool) {
	hint, ok := heuristics.InferDateTimeHint(text)
	if !ok {
		return intent.Intent{}, false
	}
	in := intent.Intent{Kind: intent.KindAgendaList}
	in.Slots.DateTimeHint = hint
	if from, to, ok := heuristics.TimeWindow(text); ok {
		in.Slots.FromTime, in.Slots.ToTime = from, to
	}
	return in, true
}

// title prefers a quoted or explicitly named title over the command
// remainder. A bare agenda noun is no title.
func title(s string) string {
	if q, ok := quoted(s); ok {
		return q
	}
	if m := namedTitleRe.FindStringSubmatch(s); m != nil {
		if t := cleanRef(m[1]); t != "" {
			return t
		}
	}
	t := cleanRef(s)
	if vagueRefs[strings.ToLower(t)] {
		return ""
	}
	return t
}

// itemRef is cleanRef without pronouns and bare agenda nouns, which point
// at no item the fast path can name.
func itemRef(s string) string {
	if q, ok := quoted(s); ok {
		return q
	}
	ref := cleanRef(demonstrativesRe.ReplaceAllString(strings.TrimSpace(s), ""))
	if vagueRefs[strings.ToLower(ref)] {
		return ""
	}
	return ref
}

func quoted(s string) (string, bool) {
	m := quotedTitleRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if g = strings.Join(strings.Fields(g), " "); g != "" {
			return truncate(g), true
		}
	}
	return "", false
}

// cleanRef reduces a command remainder to the item name: leading articles
// go, and everything from the first date, time or agenda phrase on is cut.
func cleanRef(s string) string {
	s = strings.TrimSpace(s)
	s = leadingArticlesRe.ReplaceAllString(s, "")
	if loc := titleStopRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = strings.TrimSpace(s)
	for {
		trimmed := trailingPrepRe.ReplaceAllString(s, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}
	s = strings.Trim(s, "\"'`“”‘’()[] ")
	s = strings.TrimRight(s, ".,;:!?-")
	return truncate(strings.Join(strings.Fields(s), " "))
}

func truncate(s string) string {
	if len([]rune(s)) > heuristics.MaxPlaceLen {
		s = string([]rune(s)[:heuristics.MaxPlaceLen])
	}
	return s
}
