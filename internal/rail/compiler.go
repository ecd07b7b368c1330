package rail

import (
	"fmt"
	"strings"
	"time"

	"intent-router/internal/action"
	"intent-router/internal/heuristics"
	"intent-router/internal/intent"
	"intent-router/pkg/datemath"
)

// Compiler maps rail intents onto rail action plans.
type Compiler struct {
	catalog *action.Catalog
	dates   *datemath.Parser
	now     func() time.Time
}

// NewCompiler creates a rail compiler resolving dates with dates.
func NewCompiler(dates *datemath.Parser, opts ...Option) *Compiler {
	c := &Compiler{
		catalog: Catalog,
		dates:   dates,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithClock overrides the clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) { c.now = now }
}

// Compile returns the plan for in, or a *intent.ClarificationError when a
// required argument has no filled slot.
func (c *Compiler) Compile(in intent.Intent) (intent.Plan, error) {
	s := in.Slots
	args := map[string]any{}

	switch in.Kind {
	case intent.KindTripsSearch:
		if blank(s.FromText) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askFrom, intent.SlotFromText)
		}
		if blank(s.ToText) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askTo, intent.SlotToText)
		}
		args["from"] = strings.TrimSpace(s.FromText)
		args["to"] = strings.TrimSpace(s.ToText)
		if !blank(s.ViaText) {
			args["via"] = strings.TrimSpace(s.ViaText)
		}
		if dt, ok := c.dateTime(s); ok {
			args["dateTime"] = dt
		}
		if constraints := c.constraints(in); len(constraints) > 0 {
			args["intent"] = constraints
		}

	case intent.KindDeparturesList, intent.KindArrivalsList, intent.KindDisruptionsByStation:
		if blank(s.StationText) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, stationQuestion(in.Kind), intent.SlotStationText)
		}
		args["station"] = strings.TrimSpace(s.StationText)

	case intent.KindDeparturesWindow:
		if blank(s.StationText) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askStationDepartures, intent.SlotStationText)
		}
		from, okFrom := heuristics.NormalizeClock(s.FromTime)
		to, okTo := heuristics.NormalizeClock(s.ToTime)
		if !okFrom || !okTo {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askWindow, intent.SlotFromTime, intent.SlotToTime)
		}
		args["station"] = strings.TrimSpace(s.StationText)
		args["fromTime"] = from
		args["toTime"] = to

	case intent.KindDisruptionsList, intent.KindStationsNearest:

	case intent.KindStationsSearch:
		if blank(s.StationText) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askStationQuery, intent.SlotStationText)
		}
		args["query"] = strings.TrimSpace(s.StationText)

	case intent.KindTripsDetail, intent.KindDisruptionsDetail:
		if blank(s.CtxRecon) {
			question := askTrip
			if in.Kind == intent.KindDisruptionsDetail {
				question = askDisruption
			}
			return intent.Plan{}, intent.NeedClarification(in.Kind, question, intent.SlotCtxRecon)
		}
		args["ctxRecon"] = strings.TrimSpace(s.CtxRecon)

	case intent.KindJourneyDetail:
		if blank(s.JourneyID) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askJourney, intent.SlotJourneyID)
		}
		args["journeyId"] = strings.TrimSpace(s.JourneyID)

	default:
		return intent.Plan{}, fmt.Errorf("%s.Compile: %w: %q", logPrefix, intent.ErrUnknownKind, in.Kind)
	}

	plan, err := c.catalog.Plan(string(in.Kind), args)
	if err != nil {
		return intent.Plan{}, fmt.Errorf("%s.Compile: %w", logPrefix, err)
	}
	return plan, nil
}

// constraints applies the directness of this turn's utterance to the
// requested payload and prunes it. A strict constraint carried in from an
// earlier turn is dropped unless this utterance asks for directness again.
func (c *Compiler) constraints(in intent.Intent) map[string]any {
	requested := heuristics.ApplyDirectness(in.Requested, heuristics.InferDirectness(in.Utterance))
	return intent.PruneConstraints(requested.ToMap())
}

// dateTime resolves the trip moment: an explicit date with an optional
// departure time wins over the symbolic hint.
func (c *Compiler) dateTime(s intent.Slots) (string, bool) {
	now := c.now().In(c.dates.Location())

	if !blank(s.Date) {
		day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s.Date), c.dates.Location())
		if err != nil {
			return "", false
		}
		clock := now.Format("15:04")
		if !blank(s.FromTime) {
			clock = s.FromTime
		}
		t, err := c.dates.At(day, clock)
		if err != nil {
			return "", false
		}
		return t.Format(time.RFC3339), true
	}

	hint := strings.TrimSpace(s.DateTimeHint)
	if hint == "" && !blank(s.FromTime) {
		hint = s.FromTime
	}
	if hint == "" {
		return "", false
	}
	res, err := c.dates.ResolveHint(hint, now)
	if err != nil {
		return "", false
	}
	return res.Time.Format(time.RFC3339), true
}

func stationQuestion(kind intent.Kind) string {
	switch kind {
	case intent.KindDeparturesList:
		return askStationDepartures
	case intent.KindArrivalsList:
		return askStationArrivals
	}
	return askStation
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
