package intent

import "encoding/json"

// Kind is the closed enumeration of intent kinds across domains.
type Kind string

// Intent is the structured result of extraction, independent of any action.
type Intent struct {
	Version       string    `json:"version"`
	Kind          Kind      `json:"intentKind"`
	Confidence    float64   `json:"confidence"`
	IsFollowUp    bool      `json:"isFollowUp"`
	Slots         Slots     `json:"slots"`
	Requested     Requested `json:"requested"`
	Missing       []string  `json:"missing"`
	Clarification string    `json:"clarification"`

	// Utterance is the text this intent was extracted from.
	Utterance string `json:"-"`
}

// Slots is the closed set of optional slot values. Each domain schema only
// admits its own subset.
type Slots struct {
	StationText  string `json:"stationText,omitempty"`
	FromText     string `json:"fromText,omitempty"`
	ToText       string `json:"toText,omitempty"`
	ViaText      string `json:"viaText,omitempty"`
	Date         string `json:"date,omitempty"`
	FromTime     string `json:"fromTime,omitempty"`
	ToTime       string `json:"toTime,omitempty"`
	CtxRecon     string `json:"ctxRecon,omitempty"`
	DateTimeHint string `json:"dateTimeHint,omitempty"`
	JourneyID    string `json:"journeyId,omitempty"`
	Title        string `json:"title,omitempty"`
	ItemRef      string `json:"itemRef,omitempty"`
}

// Requested holds the constraints the user asked for.
type Requested struct {
	Hard *Hard `json:"hard,omitempty"`
	Soft *Soft `json:"soft,omitempty"`
}

// Hard constraints must be satisfied exactly.
type Hard struct {
	DirectOnly    *bool    `json:"directOnly,omitempty"`
	MaxTransfers  *int     `json:"maxTransfers,omitempty"`
	AvoidStations []string `json:"avoidStations,omitempty"`
}

// Soft constraints only influence ranking.
type Soft struct {
	RankBy []string `json:"rankBy,omitempty"`
}

// Plan is a compiled action invocation.
type Plan struct {
	Action        string         `json:"action"`
	Args          map[string]any `json:"args"`
	SideEffecting bool           `json:"sideEffecting"`
}

// TurnContext is the previous turn as supplied by the caller.
type TurnContext struct {
	PreviousUserText     string
	PreviousActionOutput any
}

// OutputObject returns the previous action output as a JSON object, or nil
// when it is absent or not an object. Strings and raw bytes are decoded.
func (tc TurnContext) OutputObject() map[string]any {
	var raw []byte
	switch v := tc.PreviousActionOutput.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		raw = b
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

// Complete reports whether the intent can be compiled.
func (in Intent) Complete(minConfidence float64) bool {
	return len(in.Missing) == 0 && in.Confidence >= minConfidence
}

// ForcesDirect reports whether a hard constraint already forces a
// transfer-free route.
func (r Requested) ForcesDirect() bool {
	if r.Hard == nil {
		return false
	}
	if r.Hard.DirectOnly != nil && *r.Hard.DirectOnly {
		return true
	}
	return r.Hard.MaxTransfers != nil && *r.Hard.MaxTransfers <= 0
}

// IsZero reports whether nothing was requested.
func (r Requested) IsZero() bool {
	return len(PruneConstraints(r.ToMap())) == 0
}

// ToMap renders the constraints in their raw argument form, keeping empty
// and false values so they can be pruned explicitly.
func (r Requested) ToMap() map[string]any {
	out := map[string]any{}
	if r.Hard != nil {
		hard := map[string]any{}
		if r.Hard.DirectOnly != nil {
			hard["directOnly"] = *r.Hard.DirectOnly
		}
		if r.Hard.MaxTransfers != nil {
			hard["maxTransfers"] = *r.Hard.MaxTransfers
		}
		if r.Hard.AvoidStations != nil {
			hard["avoidStations"] = append([]string(nil), r.Hard.AvoidStations...)
		}
		out["hard"] = hard
	}
	if r.Soft != nil {
		soft := map[string]any{}
		if r.Soft.RankBy != nil {
			soft["rankBy"] = append([]string(nil), r.Soft.RankBy...)
		}
		out["soft"] = soft
	}
	return out
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }
