package modelextract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"intent-router/internal/intent"
)

// BuildPrompt assembles the instruction block, the date context, the
// previous turn and the current utterance.
func (e *Extractor) BuildPrompt(spec Spec, text string, tc intent.TurnContext) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(spec.Instructions))
	b.WriteString("\n\n")
	b.WriteString(e.dateContext())
	b.WriteString("\n\n")

	if prev := strings.TrimSpace(tc.PreviousUserText); prev != "" {
		b.WriteString(SectionPreviousText)
		b.WriteString("\n")
		b.WriteString(truncate(prev, PreviousTextLimit))
		b.WriteString("\n\n")
	}
	if tc.PreviousActionOutput != nil {
		b.WriteString(SectionPreviousOutput)
		b.WriteString("\n")
		b.WriteString(SummarizeOutput(tc.PreviousActionOutput))
		b.WriteString("\n\n")
	}

	b.WriteString(SectionUserMessage)
	b.WriteString("\n")
	b.WriteString(truncate(strings.TrimSpace(text), e.cfg.MaxInputChars))
	return b.String()
}

func (e *Extractor) dateContext() string {
	loc := e.dates.Location()
	now := e.now().In(loc)
	monday, sunday := e.dates.WeekBounds(now)
	return fmt.Sprintf(DateContextTemplate,
		loc.String(),
		now.Format(DateFormatISO),
		now.Weekday().String(),
		now.AddDate(0, 0, 1).Format(DateFormatISO),
		monday.Format(DateFormatISO),
		sunday.Format(DateFormatISO),
	)
}

// SummarizeOutput renders a previous action output for the prompt as JSON.
// Raw bytes that already hold valid JSON are used as they are; any other
// value, plain strings included, is encoded. A value that cannot be encoded
// becomes Unserializable. The result is capped at PreviousOutputLimit runes
// followed by TruncatedMarker.
func SummarizeOutput(v any) string {
	switch t := v.(type) {
	case json.RawMessage:
		v = jsonOrString(t)
	case []byte:
		v = jsonOrString(t)
	}

	s, err := encodeJSON(v)
	if err != nil {
		return Unserializable
	}

	r := []rune(s)
	if len(r) <= PreviousOutputLimit {
		return s
	}
	return string(r[:PreviousOutputLimit]) + TruncatedMarker
}

func jsonOrString(b []byte) any {
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	return string(b)
}

// encodeJSON is json.Marshal without HTML escaping, so "<" stays readable
// in the prompt.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// temperatureFor requests deterministic sampling only when the model
// accepts a temperature and is not a reasoning model.
func temperatureFor(supportsTemperature, reasoning bool) *float64 {
	if !supportsTemperature || reasoning {
		return nil
	}
	zero := 0.0
	return &zero
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
