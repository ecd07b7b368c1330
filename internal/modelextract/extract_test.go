package modelextract_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/intent"
	"intent-router/internal/modelextract"
	"intent-router/internal/rail"
	"intent-router/pkg/datemath"
	"intent-router/pkg/llmprovider"
	"intent-router/pkg/log"
)

type reply struct {
	text string
	err  error
}

// mockModel returns the queued replies in order.
type mockModel struct {
	replies []reply
	caps    llmprovider.Capabilities
	prompts []string
	opts    []llmprovider.CompleteOptions
	block   bool
}

func (m *mockModel) Complete(ctx context.Context, prompt string, opts llmprovider.CompleteOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	r := m.replies[len(m.prompts)-1]
	return r.text, r.err
}

func (m *mockModel) Capabilities() llmprovider.Capabilities { return m.caps }

const validTrip = `{"version":"rail.intent.v1","intentKind":"trips.search","confidence":0.9,"slots":{"fromText":"Utrecht","toText":"Zwolle"}}`

func newExtractor(t *testing.T, cfg modelextract.Config) (*modelextract.Extractor, modelextract.Spec) {
	t.Helper()
	dates, err := datemath.NewParser("Europe/Amsterdam")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, dates.Location())
	e := modelextract.New(log.NewNop(), dates, cfg, modelextract.WithClock(func() time.Time { return now }))
	return e, rail.New(dates).ModelSpec()
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "bare object", reply: validTrip},
		{name: "json fence", reply: "```json\n" + validTrip + "\n```"},
		{name: "plain fence with prose", reply: "Here you go:\n```\n" + validTrip + "\n```\nAnything else?"},
		{name: "object inside prose", reply: "Sure! " + validTrip + " Hope that helps."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, spec := newExtractor(t, modelextract.Config{})
			model := &mockModel{replies: []reply{{text: tt.reply}}, caps: llmprovider.Capabilities{SupportsTemperature: true}}

			got, err := e.Extract(context.Background(), spec, "van Utrecht naar Zwolle graag", intent.TurnContext{}, model)
			require.NoError(t, err)
			assert.Equal(t, intent.KindTripsSearch, got.Kind)
			assert.Equal(t, "Utrecht", got.Slots.FromText)
			assert.Equal(t, 0.9, got.Confidence)
			assert.Equal(t, "van Utrecht naar Zwolle graag", got.Utterance)
			assert.Len(t, model.prompts, 1)
		})
	}
}

func TestExtract_RetryOnce(t *testing.T) {
	t.Run("second attempt succeeds", func(t *testing.T) {
		e, spec := newExtractor(t, modelextract.Config{})
		model := &mockModel{replies: []reply{{text: "I think you want a trip."}, {text: validTrip}}}

		got, err := e.Extract(context.Background(), spec, "trein naar huis", intent.TurnContext{}, model)
		require.NoError(t, err)
		assert.Equal(t, intent.KindTripsSearch, got.Kind)
		require.Len(t, model.prompts, 2)
		assert.False(t, strings.HasSuffix(model.prompts[0], modelextract.StrictSuffix))
		assert.True(t, strings.HasSuffix(model.prompts[1], modelextract.StrictSuffix))
		assert.True(t, strings.HasPrefix(model.prompts[1], model.prompts[0]))
	})

	t.Run("no third call", func(t *testing.T) {
		e, spec := newExtractor(t, modelextract.Config{})
		unknownKey := `{"version":"rail.intent.v1","intentKind":"trips.search","confidence":0.9,"slots":{"platform":"5"}}`
		model := &mockModel{replies: []reply{{text: unknownKey}, {text: "nope"}, {text: validTrip}}}

		_, err := e.Extract(context.Background(), spec, "trein", intent.TurnContext{}, model)
		assert.ErrorIs(t, err, modelextract.ErrSchemaValidation)
		assert.Len(t, model.prompts, 2)
	})

	rejected := map[string]string{
		"unknown top-level key": `{"version":"rail.intent.v1","intentKind":"trips.search","confidence":0.9,"slots":{},"mood":"happy"}`,
		"unknown kind":          `{"version":"rail.intent.v1","intentKind":"tickets.buy","confidence":0.9,"slots":{}}`,
		"confidence range":      `{"version":"rail.intent.v1","intentKind":"trips.search","confidence":1.2,"slots":{}}`,
	}
	for name, out := range rejected {
		t.Run(name, func(t *testing.T) {
			e, spec := newExtractor(t, modelextract.Config{})
			model := &mockModel{replies: []reply{{text: out}, {text: out}}}
			_, err := e.Extract(context.Background(), spec, "trein", intent.TurnContext{}, model)
			assert.ErrorIs(t, err, modelextract.ErrSchemaValidation)
		})
	}
}

func TestExtract_ModelErrors(t *testing.T) {
	t.Run("call error is not retried", func(t *testing.T) {
		e, spec := newExtractor(t, modelextract.Config{})
		model := &mockModel{replies: []reply{{err: errors.New("connection reset")}, {text: validTrip}}}

		_, err := e.Extract(context.Background(), spec, "trein", intent.TurnContext{}, model)
		assert.ErrorIs(t, err, modelextract.ErrModelCall)
		assert.Len(t, model.prompts, 1)
	})

	t.Run("timeout", func(t *testing.T) {
		e, spec := newExtractor(t, modelextract.Config{Timeout: 20 * time.Millisecond})
		model := &mockModel{block: true}

		_, err := e.Extract(context.Background(), spec, "trein", intent.TurnContext{}, model)
		assert.ErrorIs(t, err, modelextract.ErrModelCall)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Len(t, model.prompts, 1)
	})

	t.Run("spec without schema", func(t *testing.T) {
		e, _ := newExtractor(t, modelextract.Config{})
		model := &mockModel{}
		_, err := e.Extract(context.Background(), modelextract.Spec{Domain: "x"}, "trein", intent.TurnContext{}, model)
		assert.ErrorIs(t, err, modelextract.ErrInvalidSpec)
		assert.Empty(t, model.prompts)
	})
}

func TestExtract_Temperature(t *testing.T) {
	tests := []struct {
		name string
		caps llmprovider.Capabilities
		zero bool
	}{
		{name: "supports temperature", caps: llmprovider.Capabilities{SupportsTemperature: true}, zero: true},
		{name: "reasoning model", caps: llmprovider.Capabilities{SupportsTemperature: true, IsReasoningModel: true}},
		{name: "no temperature support", caps: llmprovider.Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, spec := newExtractor(t, modelextract.Config{})
			model := &mockModel{replies: []reply{{text: validTrip}}, caps: tt.caps}
			_, err := e.Extract(context.Background(), spec, "trein", intent.TurnContext{}, model)
			require.NoError(t, err)

			got := model.opts[0].Temperature
			if tt.zero {
				require.NotNil(t, got)
				assert.Equal(t, 0.0, *got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	e, spec := newExtractor(t, modelextract.Config{MaxInputChars: 10})

	t.Run("sections and truncation", func(t *testing.T) {
		tc := intent.TurnContext{
			PreviousUserText:     strings.Repeat("a", 900),
			PreviousActionOutput: map[string]any{"station": strings.Repeat("x", 2100)},
		}
		p := e.BuildPrompt(spec, "0123456789abcdef", tc)

		assert.True(t, strings.HasPrefix(p, strings.TrimSpace(spec.Instructions)))
		assert.Contains(t, p, "- Today: 2024-05-01 (Wednesday)")
		assert.Contains(t, p, "- Tomorrow: 2024-05-02")
		assert.Contains(t, p, "- This week: 2024-04-29 to 2024-05-05")
		assert.Contains(t, p, modelextract.SectionPreviousText+"\n"+strings.Repeat("a", 800)+"\n")
		assert.NotContains(t, p, strings.Repeat("a", 801))
		assert.Contains(t, p, modelextract.TruncatedMarker)
		assert.True(t, strings.HasSuffix(p, modelextract.SectionUserMessage+"\n0123456789"))
	})

	t.Run("empty context is left out", func(t *testing.T) {
		p := e.BuildPrompt(spec, "hoi", intent.TurnContext{})
		assert.NotContains(t, p, modelextract.SectionPreviousText)
		assert.NotContains(t, p, modelextract.SectionPreviousOutput)
	})
}

func TestSummarizeOutput(t *testing.T) {
	assert.Equal(t, `{"station":"Utrecht"}`, modelextract.SummarizeOutput(map[string]any{"station": "Utrecht"}))
	assert.Equal(t, `"plain text"`, modelextract.SummarizeOutput("plain text"))
	assert.Equal(t, `"say \"hi\" <now>"`, modelextract.SummarizeOutput(`say "hi" <now>`))
	assert.Equal(t, `{"trips":2}`, modelextract.SummarizeOutput(json.RawMessage(`{"trips":2}`)))
	assert.Equal(t, `[1,2]`, modelextract.SummarizeOutput([]byte(`[1,2]`)))
	assert.Equal(t, `"not json"`, modelextract.SummarizeOutput([]byte("not json")))
	assert.Equal(t, "null", modelextract.SummarizeOutput(nil))
	assert.Equal(t, modelextract.Unserializable, modelextract.SummarizeOutput(map[string]any{"f": func() {}}))
	assert.Equal(t, modelextract.Unserializable, modelextract.SummarizeOutput(make(chan int)))

	long := modelextract.SummarizeOutput(strings.Repeat("é", 2500))
	assert.Equal(t, `"`+strings.Repeat("é", 1999)+modelextract.TruncatedMarker, long)
}

func TestParseObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  bool
	}{
		{name: "bare", in: ` {"a":1} `, want: `{"a":1}`},
		{name: "fence skips non-object block", in: "```\n[1,2]\n```\n```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "braces in prose", in: `result: {"a":{"b":2}} done`, want: `{"a":{"b":2}}`},
		{name: "no object", in: "no json here", err: true},
		{name: "broken object", in: `{"a":`, err: true},
		{name: "two objects", in: `{"a":1} {"b":2}`, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := modelextract.ParseObject(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, modelextract.ErrNoObject)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
