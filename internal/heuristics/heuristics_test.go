package heuristics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/internal/heuristics"
	"intent-router/internal/intent"
)

func TestCleanPlace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "almere muziekwijk zien", want: "almere muziekwijk"},
		{in: "amsterdam centraal vandaag. geef me treinopties", want: "amsterdam centraal"},
		{in: "  Utrecht   Centraal  ", want: "Utrecht Centraal"},
		{in: `"Den Haag HS".`, want: "Den Haag HS"},
		{in: "(Schiphol Airport)!", want: "Schiphol Airport"},
		{in: "Hoek van Holland tussen 9 en 10", want: "Hoek van Holland"},
		{in: "Rotterdam Centraal please", want: "Rotterdam Centraal"},
		{in: "Zwolle, en dan verder", want: "Zwolle"},
		{in: "Leiden via Schiphol", want: "Leiden"},
		{in: "18:00", want: ""},
		{in: "18:00 Utrecht", want: ""},
		{in: "vandaag", want: ""},
		{in: "   ", want: ""},
		{in: "12345", want: ""},
		{in: "Bergen op Zoom", want: "Bergen op Zoom"},
		{in: "Bergen op Zoom op 24 december", want: "Bergen op Zoom"},
		{in: "Zwolle op 24 december om 9:00", want: "Zwolle"},
		{in: "Zwolle 24 december", want: "Zwolle"},
		{in: "Zwolle on 12/05", want: "Zwolle"},
		{in: "Zwolle vrijdag om 9:00", want: "Zwolle"},
		{in: "Zwolle over 2 dagen", want: "Zwolle"},
		{in: "Amersfoort in mei", want: "Amersfoort"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, heuristics.CleanPlace(tt.in))
		})
	}
}

func TestCleanPlace_Cap(t *testing.T) {
	long := strings.Repeat("abcdefghij ", 20)
	got := heuristics.CleanPlace(long)
	assert.LessOrEqual(t, len([]rune(got)), heuristics.MaxPlaceLen)
	assert.NotEmpty(t, got)
}

func TestTimeWindow(t *testing.T) {
	tests := []struct {
		text     string
		from, to string
		ok       bool
	}{
		{text: "tussen 18:00 en 19:00 vertrekbord station Utrecht Centraal", from: "18:00", to: "19:00", ok: true},
		{text: "departures between 7.30 and 9:05 at Leiden", from: "07:30", to: "09:05", ok: true},
		{text: "vertrektijden van 8:00 tot 10:00", from: "08:00", to: "10:00", ok: true},
		{text: "from 21:15 to 23:45 departures", from: "21:15", to: "23:45", ok: true},
		{text: "tussen Utrecht en Amsterdam", ok: false},
		{text: "tussen 25:00 en 26:00", ok: false},
		{text: "vertrekbord Utrecht", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, ok := heuristics.TimeWindow(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestFirstClock(t *testing.T) {
	got, ok := heuristics.FirstClock("trein om 9 uur")
	require.True(t, ok)
	assert.Equal(t, "09:00", got)

	got, ok = heuristics.FirstClock("at 7.45 please")
	require.True(t, ok)
	assert.Equal(t, "07:45", got)

	_, ok = heuristics.FirstClock("no time here")
	assert.False(t, ok)
}

func TestInferDirectness(t *testing.T) {
	tests := []struct {
		text string
		want heuristics.Directness
	}{
		{text: "van Utrecht naar Zwolle zonder overstappen", want: heuristics.DirectnessStrict},
		{text: "from Utrecht to Zwolle, direct only", want: heuristics.DirectnessStrict},
		{text: "I must go direct", want: heuristics.DirectnessStrict},
		{text: "only trains without changes", want: heuristics.DirectnessStrict},
		{text: "van Utrecht naar Zwolle direct", want: heuristics.DirectnessStrict},
		{text: "with the fewest transfers please", want: heuristics.DirectnessPreferred},
		{text: "met zo min mogelijk overstappen", want: heuristics.DirectnessPreferred},
		{text: "liefst rechtstreeks", want: heuristics.DirectnessPreferred},
		{text: "direct if possible", want: heuristics.DirectnessPreferred},
		{text: "ik wil van almere muziekwijk naar amsterdam centraal vandaag. geef me treinopties", want: heuristics.DirectnessNone},
		{text: "from Utrecht to Zwolle", want: heuristics.DirectnessNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, heuristics.InferDirectness(tt.text))
		})
	}
}

func TestApplyDirectness(t *testing.T) {
	t.Run("strict sets hard constraints", func(t *testing.T) {
		got := heuristics.ApplyDirectness(intent.Requested{}, heuristics.DirectnessStrict)
		require.NotNil(t, got.Hard)
		assert.True(t, *got.Hard.DirectOnly)
		assert.Equal(t, 0, *got.Hard.MaxTransfers)
		assert.Nil(t, got.Soft)
	})

	t.Run("preferred prepends fewest transfers once", func(t *testing.T) {
		in := intent.Requested{Soft: &intent.Soft{RankBy: []string{intent.RankFastest, intent.RankFewestTransfers}}}
		got := heuristics.ApplyDirectness(in, heuristics.DirectnessPreferred)
		assert.Equal(t, []string{intent.RankFewestTransfers, intent.RankFastest}, got.Soft.RankBy)
		// input untouched
		assert.Equal(t, []string{intent.RankFastest, intent.RankFewestTransfers}, in.Soft.RankBy)
	})

	t.Run("preferred defers to forced directness", func(t *testing.T) {
		in := intent.Requested{Hard: &intent.Hard{DirectOnly: intent.Bool(true)}}
		got := heuristics.ApplyDirectness(in, heuristics.DirectnessPreferred)
		assert.Nil(t, got.Soft)
		assert.True(t, *got.Hard.DirectOnly)
	})

	t.Run("none strips stale strict constraint", func(t *testing.T) {
		in := intent.Requested{
			Hard: &intent.Hard{DirectOnly: intent.Bool(true), MaxTransfers: intent.Int(0), AvoidStations: []string{"Amersfoort"}},
		}
		got := heuristics.ApplyDirectness(in, heuristics.DirectnessNone)
		assert.Nil(t, got.Hard.DirectOnly)
		assert.Nil(t, got.Hard.MaxTransfers)
		assert.Equal(t, []string{"Amersfoort"}, got.Hard.AvoidStations)
		assert.True(t, *in.Hard.DirectOnly, "input must not be mutated")
	})

	t.Run("none keeps a positive transfer cap", func(t *testing.T) {
		in := intent.Requested{Hard: &intent.Hard{MaxTransfers: intent.Int(2)}}
		got := heuristics.ApplyDirectness(in, heuristics.DirectnessNone)
		assert.Equal(t, 2, *got.Hard.MaxTransfers)
	})

	t.Run("none on empty stays empty", func(t *testing.T) {
		got := heuristics.ApplyDirectness(intent.Requested{}, heuristics.DirectnessNone)
		assert.True(t, got.IsZero())
	})
}

func TestInferDateTimeHint(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{text: "van A naar B vandaag", want: "today", ok: true},
		{text: "tomorrow from Utrecht to Zwolle", want: "tomorrow", ok: true},
		{text: "gisteren", want: "yesterday", ok: true},
		{text: "morgen om 18:30", want: "tomorrow@18:30", ok: true},
		{text: "today at 9.15", want: "today@09:15", ok: true},
		{text: "vanochtend", want: "today@08:00", ok: true},
		{text: "vanmorgen naar Utrecht", want: "today@08:00", ok: true},
		{text: "this afternoon", want: "today@14:00", ok: true},
		{text: "vanavond", want: "today@19:00", ok: true},
		{text: "tonight", want: "today@21:00", ok: true},
		{text: "morgenochtend", want: "tomorrow@08:00", ok: true},
		{text: "morgenavond", want: "tomorrow@19:00", ok: true},
		{text: "tomorrow afternoon", want: "tomorrow@14:00", ok: true},
		{text: "vanavond om 20:00", want: "today@20:00", ok: true},
		{text: "om 7 uur", want: "today@07:00", ok: true},
		{text: "trains now", want: "now", ok: true},
		{text: "van Utrecht naar Zwolle", want: "", ok: true},
		{text: "van Utrecht naar Zwolle vrijdag om 9:00", want: "friday@09:00", ok: true},
		{text: "this friday", want: "friday", ok: true},
		{text: "from Utrecht to Zwolle next friday at 10:00", want: "next friday@10:00", ok: true},
		{text: "volgende maandag", want: "next monday", ok: true},
		{text: "overmorgen om 9:00", want: "day after tomorrow@09:00", ok: true},
		{text: "the day after tomorrow", want: "day after tomorrow", ok: true},
		{text: "over 2 weken om 8:15", want: "in 2 weeks@08:15", ok: true},
		{text: "in 3 days", want: "in 3 days", ok: true},
		{text: "van Utrecht naar Zwolle op 24 december om 9:00", ok: false},
		{text: "on the 3rd of may", ok: false},
		{text: "december 24 at 10:00", ok: false},
		{text: "12/05 om 9:00", ok: false},
		{text: "2025-12-24", ok: false},
		{text: "lunch met Jan 12:00", want: "today@12:00", ok: true},
		{text: "call with Jan 12.30 tomorrow", want: "tomorrow@12:30", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := heuristics.InferDateTimeHint(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
