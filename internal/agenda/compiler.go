package agenda

import (
	"fmt"
	"strings"
	"time"

	"intent-router/internal/action"
	"intent-router/internal/heuristics"
	"intent-router/internal/intent"
	"intent-router/pkg/datemath"
)

// Compiler maps agenda intents onto agenda action plans.
type Compiler struct {
	catalog *action.Catalog
	dates   *datemath.Parser
	now     func() time.Time
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithClock overrides the clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) { c.now = now }
}

// NewCompiler creates an agenda compiler resolving dates with dates.
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

// Compile returns the plan for in, or a *intent.ClarificationError when a
// required argument cannot be filled.
func (c *Compiler) Compile(in intent.Intent) (intent.Plan, error) {
	s := in.Slots
	args := map[string]any{}

	switch in.Kind {
	case intent.KindAgendaList:
		args["date"] = c.day(s).Format(time.DateOnly)
		if from, ok := heuristics.NormalizeClock(s.FromTime); ok {
			args["fromTime"] = from
		}
		if to, ok := heuristics.NormalizeClock(s.ToTime); ok {
			args["toTime"] = to
		}

	case intent.KindAgendaCreate:
		if blank(s.Title) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askTitle, intent.SlotTitle)
		}
		start, ok := c.start(s)
		if !ok {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askWhen, intent.SlotDateTimeHint)
		}
		args["title"] = strings.TrimSpace(s.Title)
		args["start"] = start.Format(time.RFC3339)
		if end, ok := c.end(s, start); ok {
			args["end"] = end.Format(time.RFC3339)
		}

	case intent.KindAgendaUpdate:
		if blank(s.ItemRef) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askUpdateItem, intent.SlotItemRef)
		}
		args["itemRef"] = strings.TrimSpace(s.ItemRef)
		if !blank(s.Title) {
			args["title"] = strings.TrimSpace(s.Title)
		}
		if start, ok := c.start(s); ok {
			args["start"] = start.Format(time.RFC3339)
			if end, ok := c.end(s, start); ok {
				args["end"] = end.Format(time.RFC3339)
			}
		}
		if len(args) == 1 {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askChange, intent.SlotDateTimeHint, intent.SlotTitle)
		}

	case intent.KindAgendaDelete:
		if blank(s.ItemRef) {
			return intent.Plan{}, intent.NeedClarification(in.Kind, askDeleteItem, intent.SlotItemRef)
		}
		args["itemRef"] = strings.TrimSpace(s.ItemRef)

	default:
		return intent.Plan{}, fmt.Errorf("%s.Compile: %w: %q", logPrefix, intent.ErrUnknownKind, in.Kind)
	}

	plan, err := c.catalog.Plan(string(in.Kind), args)
	if err != nil {
		return intent.Plan{}, fmt.Errorf("%s.Compile: %w", logPrefix, err)
	}
	return plan, nil
}

// day is the calendar day the intent refers to, today when nothing says otherwise.
func (c *Compiler) day(s intent.Slots) time.Time {
	now := c.now().In(c.dates.Location())
	if d, ok := c.explicitDate(s); ok {
		return d
	}
	if !blank(s.DateTimeHint) {
		if res, err := c.dates.ResolveHint(s.DateTimeHint, now); err == nil {
			return c.dates.StartOfDay(res.Time)
		}
	}
	return c.dates.StartOfDay(now)
}

// start resolves a concrete moment. A day without a clock is not enough,
// except for "now".
func (c *Compiler) start(s intent.Slots) (time.Time, bool) {
	now := c.now().In(c.dates.Location())
	clock, hasClock := heuristics.NormalizeClock(s.FromTime)

	if d, ok := c.explicitDate(s); ok {
		if !hasClock {
			return time.Time{}, false
		}
		t, err := c.dates.At(d, clock)
		return t, err == nil
	}

	hint := strings.ToLower(strings.TrimSpace(s.DateTimeHint))
	if hint == "" {
		if !hasClock {
			return time.Time{}, false
		}
		t, err := c.dates.At(now, clock)
		return t, err == nil
	}

	res, err := c.dates.ResolveHint(hint, now)
	if err != nil {
		return time.Time{}, false
	}
	switch {
	case hasClock:
		t, err := c.dates.At(res.Time, clock)
		return t, err == nil
	case res.HasClock, hint == heuristics.HintNow:
		return res.Time, true
	}
	return time.Time{}, false
}

// end is toTime on the start day, kept only when it is after start.
func (c *Compiler) end(s intent.Slots, start time.Time) (time.Time, bool) {
	clock, ok := heuristics.NormalizeClock(s.ToTime)
	if !ok {
		return time.Time{}, false
	}
	t, err := c.dates.At(start, clock)
	if err != nil || !t.After(start) {
		return time.Time{}, false
	}
	return t, true
}

func (c *Compiler) explicitDate(s intent.Slots) (time.Time, bool) {
	if blank(s.Date) {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s.Date), c.dates.Location())
	return d, err == nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
