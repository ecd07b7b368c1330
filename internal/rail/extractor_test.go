package rail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/intent"
	"intent-router/internal/rail"
)

func TestTryExtract_Board(t *testing.T) {
	e := rail.NewExtractor()

	tests := []struct {
		name     string
		text     string
		kind     intent.Kind
		station  string
		from, to string
	}{
		{
			name:    "dutch departure board",
			text:    "laat het vertrekbord van station almere muziekwijk zien",
			kind:    intent.KindDeparturesList,
			station: "almere muziekwijk",
		},
		{
			name:    "windowed board",
			text:    "tussen 18:00 en 19:00 vertrekbord station Utrecht Centraal",
			kind:    intent.KindDeparturesWindow,
			station: "Utrecht Centraal",
			from:    "18:00",
			to:      "19:00",
		},
		{
			name:    "english arrivals",
			text:    "show me the arrivals at Schiphol Airport please",
			kind:    intent.KindArrivalsList,
			station: "Schiphol Airport",
		},
		{
			name:    "arrival and departure words pick departures",
			text:    "aankomsten en vertrektijden in Zwolle",
			kind:    intent.KindDeparturesList,
			station: "Zwolle",
		},
		{
			name:    "board word followed by station",
			text:    "vertrektijden Den Haag HS",
			kind:    intent.KindDeparturesList,
			station: "Den Haag HS",
		},
		{
			name:    "window with from-to phrase",
			text:    "departures from 7:30 to 9:00 at Leiden Centraal",
			kind:    intent.KindDeparturesWindow,
			station: "Leiden Centraal",
			from:    "07:30",
			to:      "09:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.TryExtract(tt.text, intent.TurnContext{})
			require.True(t, ok)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Contains(t, got.Slots.StationText, tt.station)
			assert.Equal(t, tt.from, got.Slots.FromTime)
			assert.Equal(t, tt.to, got.Slots.ToTime)
			assert.Equal(t, intent.FastPathConfidence, got.Confidence)
			assert.Equal(t, intent.VersionRail, got.Version)
			assert.Equal(t, tt.text, got.Utterance)
			assert.Empty(t, got.Missing)
			assert.False(t, got.IsFollowUp)
		})
	}
}

func TestTryExtract_BoardContextCarryOver(t *testing.T) {
	e := rail.NewExtractor()

	tests := []struct {
		name   string
		output any
		want   string
	}{
		{name: "station string", output: map[string]any{"station": "Amersfoort Centraal"}, want: "Amersfoort Centraal"},
		{name: "stationName", output: map[string]any{"stationName": "Ede-Wageningen"}, want: "Ede-Wageningen"},
		{name: "station object", output: map[string]any{"station": map[string]any{"code": "UT", "name": "Utrecht Centraal"}}, want: "Utrecht Centraal"},
		{name: "station object code only", output: map[string]any{"station": map[string]any{"code": "ASD"}}, want: "ASD"},
		{name: "json string", output: `{"stationText":"Zwolle"}`, want: "Zwolle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.TryExtract("en het vertrekbord?", intent.TurnContext{PreviousActionOutput: tt.output})
			require.True(t, ok)
			assert.Equal(t, intent.KindDeparturesList, got.Kind)
			assert.Equal(t, tt.want, got.Slots.StationText)
			assert.True(t, got.IsFollowUp)
			assert.Empty(t, got.Missing)
		})
	}

	t.Run("text station wins over context", func(t *testing.T) {
		got, ok := e.TryExtract("vertrekbord station Breda", intent.TurnContext{PreviousActionOutput: map[string]any{"station": "Tilburg"}})
		require.True(t, ok)
		assert.Equal(t, "Breda", got.Slots.StationText)
		assert.False(t, got.IsFollowUp)
	})

	t.Run("no station anywhere is incomplete", func(t *testing.T) {
		got, ok := e.TryExtract("laat het vertrekbord zien", intent.TurnContext{PreviousActionOutput: []any{"not", "an", "object"}})
		require.True(t, ok)
		assert.Equal(t, []string{intent.SlotStationText}, got.Missing)
		assert.NotEmpty(t, got.Clarification)
		assert.Empty(t, got.Slots.StationText)
	})
}

func TestTryExtract_Route(t *testing.T) {
	e := rail.NewExtractor()

	t.Run("route with date stripping", func(t *testing.T) {
		got, ok := e.TryExtract("ik wil van almere muziekwijk naar amsterdam centraal vandaag. geef me treinopties", intent.TurnContext{})
		require.True(t, ok)
		assert.Equal(t, intent.KindTripsSearch, got.Kind)
		assert.Contains(t, got.Slots.FromText, "almere muziekwijk")
		assert.Equal(t, "amsterdam centraal", got.Slots.ToText)
		assert.Equal(t, "today", got.Slots.DateTimeHint)
		if got.Requested.Hard != nil && got.Requested.Hard.DirectOnly != nil {
			assert.False(t, *got.Requested.Hard.DirectOnly)
		}
	})

	t.Run("english with via and time", func(t *testing.T) {
		got, ok := e.TryExtract("I want to go from Leiden to Zwolle via Amersfoort tomorrow at 08:15", intent.TurnContext{})
		require.True(t, ok)
		assert.Equal(t, "Leiden", got.Slots.FromText)
		assert.Equal(t, "Zwolle", got.Slots.ToText)
		assert.Equal(t, "Amersfoort", got.Slots.ViaText)
		assert.Equal(t, "tomorrow@08:15", got.Slots.DateTimeHint)
	})

	t.Run("between form", func(t *testing.T) {
		got, ok := e.TryExtract("treinen tussen Den Bosch en Eindhoven", intent.TurnContext{})
		require.True(t, ok)
		assert.Equal(t, "Den Bosch", got.Slots.FromText)
		assert.Equal(t, "Eindhoven", got.Slots.ToText)
	})

	t.Run("strict directness", func(t *testing.T) {
		got, ok := e.TryExtract("van Utrecht naar Zwolle zonder overstappen", intent.TurnContext{})
		require.True(t, ok)
		require.NotNil(t, got.Requested.Hard)
		assert.True(t, *got.Requested.Hard.DirectOnly)
		assert.Equal(t, 0, *got.Requested.Hard.MaxTransfers)
	})

	t.Run("preferred directness", func(t *testing.T) {
		got, ok := e.TryExtract("from Utrecht to Zwolle with the fewest transfers", intent.TurnContext{})
		require.True(t, ok)
		require.NotNil(t, got.Requested.Soft)
		assert.Equal(t, []string{intent.RankFewestTransfers}, got.Requested.Soft.RankBy)
		assert.Nil(t, got.Requested.Hard)
	})

	t.Run("time window is not a route", func(t *testing.T) {
		_, ok := e.TryExtract("treinen tussen 18:00 en 19:00", intent.TurnContext{})
		assert.False(t, ok)
	})

	days := []struct {
		text, from, to, hint string
	}{
		{text: "van Utrecht naar Zwolle vrijdag om 9:00", from: "Utrecht", to: "Zwolle", hint: "friday@09:00"},
		{text: "from Utrecht to Zwolle next friday at 10:00", from: "Utrecht", to: "Zwolle", hint: "next friday@10:00"},
		{text: "van Utrecht naar Zwolle overmorgen om 9:00", from: "Utrecht", to: "Zwolle", hint: "day after tomorrow@09:00"},
		{text: "van Zwolle naar Bergen op Zoom zaterdag", from: "Zwolle", to: "Bergen op Zoom", hint: "saturday"},
		{text: "van Utrecht naar Zwolle over 2 dagen om 7:45", from: "Utrecht", to: "Zwolle", hint: "in 2 days@07:45"},
	}
	for _, tt := range days {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := e.TryExtract(tt.text, intent.TurnContext{})
			require.True(t, ok)
			assert.Equal(t, tt.from, got.Slots.FromText)
			assert.Equal(t, tt.to, got.Slots.ToText)
			assert.Equal(t, tt.hint, got.Slots.DateTimeHint)
		})
	}

	t.Run("later occurrence is tried", func(t *testing.T) {
		got, ok := e.TryExtract("from 9:00 to 10:00, trains from Breda to Tilburg", intent.TurnContext{})
		require.True(t, ok)
		assert.Equal(t, "Breda", got.Slots.FromText)
		assert.Equal(t, "Tilburg", got.Slots.ToText)
	})
}

func TestTryExtract_NoMatch(t *testing.T) {
	e := rail.NewExtractor()

	for _, text := range []string{
		"",
		"   ",
		"zijn er storingen?",
		"I want to travel to Amsterdam",
		"go to Zwolle from Utrecht",
		"van Utrecht naar Zwolle op 24 december om 9:00",
		"vertrektijden Utrecht Centraal op 12/05",
	} {
		t.Run(text, func(t *testing.T) {
			_, ok := e.TryExtract(text, intent.TurnContext{PreviousActionOutput: map[string]any{"station": "Utrecht"}})
			assert.False(t, ok)
		})
	}
}

// Board rules are evaluated before route rules. These cases pin down what
// happens when an utterance matches both families.
func TestTryExtract_Precedence(t *testing.T) {
	e := rail.NewExtractor()
	assert.Equal(t, []string{"board", "route"}, e.RuleNames())

	tests := []struct {
		name    string
		text    string
		kind    intent.Kind
		station string
		from    string
	}{
		{
			name:    "board noun with from-to resolves to the board of the origin",
			text:    "vertrektijden van Utrecht naar Zwolle",
			kind:    intent.KindDeparturesList,
			station: "Utrecht",
		},
		{
			name:    "english departures with route words",
			text:    "departures from Amersfoort to Deventer",
			kind:    intent.KindDeparturesList,
			station: "Amersfoort",
		},
		{
			name: "departure verb is not board vocabulary",
			text: "hoe laat vertrekken de treinen van Utrecht naar Zwolle",
			kind: intent.KindTripsSearch,
			from: "Utrecht",
		},
		{
			name:    "window board with between-and places stays a board",
			text:    "vertrekbord station Gouda tussen 10:00 en 11:00",
			kind:    intent.KindDeparturesWindow,
			station: "Gouda",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.TryExtract(tt.text, intent.TurnContext{})
			require.True(t, ok)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.station, got.Slots.StationText)
			assert.Equal(t, tt.from, got.Slots.FromText)
		})
	}
}
