package intent_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/intent"
)

func TestPruneConstraints(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "empty input",
			in:   map[string]any{},
			want: map[string]any{},
		},
		{
			name: "absent-valued hard keys are dropped with their wrapper",
			in: map[string]any{
				"hard": map[string]any{"directOnly": false, "avoidStations": []string{}, "note": "", "x": nil},
			},
			want: map[string]any{},
		},
		{
			name: "zero transfers is a real constraint",
			in: map[string]any{
				"hard": map[string]any{"directOnly": true, "maxTransfers": 0},
			},
			want: map[string]any{
				"hard": map[string]any{"directOnly": true, "maxTransfers": 0},
			},
		},
		{
			name: "empty rankBy removes soft",
			in: map[string]any{
				"soft": map[string]any{"rankBy": []any{"", nil}},
			},
			want: map[string]any{},
		},
		{
			name: "rankBy keeps order",
			in: map[string]any{
				"soft": map[string]any{"rankBy": []string{"fewest_transfers", "", "fastest"}},
			},
			want: map[string]any{
				"soft": map[string]any{"rankBy": []string{"fewest_transfers", "fastest"}},
			},
		},
		{
			name: "unknown wrapper keys are not forwarded",
			in:   map[string]any{"other": 1},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intent.PruneConstraints(tt.in))
		})
	}
}

func TestRequested(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var r intent.Requested
		assert.True(t, r.IsZero())
		assert.False(t, r.ForcesDirect())
	})

	t.Run("false directOnly is still zero", func(t *testing.T) {
		r := intent.Requested{Hard: &intent.Hard{DirectOnly: intent.Bool(false)}}
		assert.True(t, r.IsZero())
		assert.False(t, r.ForcesDirect())
	})

	t.Run("max transfers zero forces direct", func(t *testing.T) {
		r := intent.Requested{Hard: &intent.Hard{MaxTransfers: intent.Int(0)}}
		assert.True(t, r.ForcesDirect())
		assert.False(t, r.IsZero())
	})

	t.Run("to map keeps raw values", func(t *testing.T) {
		r := intent.Requested{
			Hard: &intent.Hard{DirectOnly: intent.Bool(true), MaxTransfers: intent.Int(0)},
			Soft: &intent.Soft{RankBy: []string{intent.RankFastest}},
		}
		assert.Equal(t, map[string]any{
			"hard": map[string]any{"directOnly": true, "maxTransfers": 0},
			"soft": map[string]any{"rankBy": []string{"fastest"}},
		}, r.ToMap())
	})
}

func TestIntentComplete(t *testing.T) {
	in := intent.Intent{Confidence: 0.95}
	assert.True(t, in.Complete(0.7))

	in.Confidence = 0.5
	assert.False(t, in.Complete(0.7))

	in = intent.Intent{Confidence: 0.95, Missing: []string{intent.SlotStationText}}
	assert.False(t, in.Complete(0.7))
}

func TestClarificationError(t *testing.T) {
	err := fmt.Errorf("compile: %w", intent.NeedClarification(intent.KindAgendaUpdate, "Which item should I update?", intent.SlotItemRef))

	ce, ok := intent.AsClarification(err)
	require.True(t, ok)
	assert.Equal(t, []string{"itemRef"}, ce.Missing)
	assert.Equal(t, "Which item should I update?", ce.Clarification)
	assert.Contains(t, err.Error(), "agenda.update")

	_, ok = intent.AsClarification(errors.New("other"))
	assert.False(t, ok)
}

const testSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["version", "intentKind", "confidence", "isFollowUp", "slots", "requested", "missing", "clarification"],
  "properties": {
    "version": {"const": "test.intent.v1"},
    "intentKind": {"enum": ["departures.list"]},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "isFollowUp": {"type": "boolean"},
    "slots": {
      "type": "object",
      "additionalProperties": false,
      "properties": {"stationText": {"type": "string"}}
    },
    "requested": {"type": "object"},
    "missing": {"type": "array", "items": {"type": "string"}},
    "clarification": {"type": "string"}
  }
}`

func TestSchemaDecodeIntent(t *testing.T) {
	schema, err := intent.CompileSchema("test-intent", testSchema)
	require.NoError(t, err)
	assert.Equal(t, "test-intent", schema.Name())

	valid := `{"version":"test.intent.v1","intentKind":"departures.list","confidence":0.9,"isFollowUp":false,
		"slots":{"stationText":"Utrecht Centraal"},"requested":{},"missing":[],"clarification":""}`

	got, err := schema.DecodeIntent([]byte(valid))
	require.NoError(t, err)
	assert.Equal(t, intent.KindDeparturesList, got.Kind)
	assert.Equal(t, "Utrecht Centraal", got.Slots.StationText)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)

	invalid := map[string]string{
		"unknown slot":       `{"version":"test.intent.v1","intentKind":"departures.list","confidence":0.9,"isFollowUp":false,"slots":{"platform":"5"},"requested":{},"missing":[],"clarification":""}`,
		"unknown top key":    `{"version":"test.intent.v1","intentKind":"departures.list","confidence":0.9,"isFollowUp":false,"slots":{},"requested":{},"missing":[],"clarification":"","extra":1}`,
		"kind outside enum":  `{"version":"test.intent.v1","intentKind":"trips.search","confidence":0.9,"isFollowUp":false,"slots":{},"requested":{},"missing":[],"clarification":""}`,
		"confidence > 1":     `{"version":"test.intent.v1","intentKind":"departures.list","confidence":1.5,"isFollowUp":false,"slots":{},"requested":{},"missing":[],"clarification":""}`,
		"wrong version":      `{"version":"v0","intentKind":"departures.list","confidence":0.9,"isFollowUp":false,"slots":{},"requested":{},"missing":[],"clarification":""}`,
		"missing required":   `{"version":"test.intent.v1","intentKind":"departures.list"}`,
		"not json":           `departures please`,
		"requested bad type": `{"version":"test.intent.v1","intentKind":"departures.list","confidence":0.9,"isFollowUp":false,"slots":{},"requested":{"hard":{"directOnly":"yes"}},"missing":[],"clarification":""}`,
	}

	for name, raw := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := schema.DecodeIntent([]byte(raw))
			assert.ErrorIs(t, err, intent.ErrSchemaInvalid)
		})
	}
}

func TestSchemaValidateGoValues(t *testing.T) {
	schema, err := intent.CompileSchema("args", `{
		"type": "object",
		"additionalProperties": false,
		"required": ["station"],
		"properties": {"station": {"type": "string", "minLength": 1}, "avoid": {"type": "array", "items": {"type": "string"}}}
	}`)
	require.NoError(t, err)

	assert.NoError(t, schema.Validate(map[string]any{"station": "Utrecht", "avoid": []string{"Amersfoort"}}))
	assert.ErrorIs(t, schema.Validate(map[string]any{"station": ""}), intent.ErrSchemaInvalid)
	assert.ErrorIs(t, schema.Validate(map[string]any{"station": "x", "query": "y"}), intent.ErrSchemaInvalid)
}

func TestCompileSchemaRejectsBrokenSource(t *testing.T) {
	_, err := intent.CompileSchema("broken", `{"type": 12`)
	assert.Error(t, err)
}

func TestTurnContextOutputObject(t *testing.T) {
	want := map[string]any{"journeyId": "abc"}

	tests := []struct {
		name   string
		output any
		want   map[string]any
	}{
		{name: "absent", output: nil, want: nil},
		{name: "map", output: want, want: want},
		{name: "string", output: `{"journeyId":"abc"}`, want: want},
		{name: "bytes", output: []byte(`{"journeyId":"abc"}`), want: want},
		{name: "struct", output: struct {
			JourneyID string `json:"journeyId"`
		}{"abc"}, want: want},
		{name: "array", output: `[1,2]`, want: nil},
		{name: "garbage", output: "not json", want: nil},
		{name: "unmarshalable", output: func() {}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intent.TurnContext{PreviousActionOutput: tt.output}.OutputObject()
			assert.Equal(t, tt.want, got)
		})
	}
}
