package router

import (
	"time"

	"intent-router/internal/intent"
	"intent-router/pkg/canonical"
)

// State is a step of the routing state machine.
type State string

const (
	StateStart              State = "start"
	StateDeterministicTried State = "deterministic_tried"
	StateModelTried         State = "model_tried"
	StateGated              State = "gated"
	StateCompiled           State = "compiled"
	StateDegraded           State = "degraded"
)

// Source tells which extractor produced the intent.
type Source string

const (
	SourceDeterministic Source = "deterministic"
	SourceModel         Source = "model"
	SourceNone          Source = "none"
)

// Config is passed explicitly to New; nothing is read from globals.
type Config struct {
	Enabled      bool
	ModelEnabled bool
	// MinConfidence is the gate threshold; nil means DefaultMinConfidence
	// and 0 accepts every confidence.
	MinConfidence *float64
	MaxInputChars int
	ModelTimeout  time.Duration
}

// Request is one user turn for one domain.
type Request struct {
	Domain  string
	Text    string
	Context intent.TurnContext

	// TurnKey identifies the user turn, e.g. "{chatId}:{messageId}". It
	// seeds the identifiers of side-effecting plans.
	TurnKey string
}

// Result is the terminal outcome of Route. Plan and IDs are set only when
// State is StateCompiled; Reason only when it is StateDegraded.
type Result struct {
	State         State                  `json:"state"`
	Trail         []State                `json:"trail"`
	Source        Source                 `json:"source"`
	Domain        string                 `json:"domain"`
	Intent        *intent.Intent         `json:"intent,omitempty"`
	Plan          *intent.Plan           `json:"plan,omitempty"`
	IDs           *canonical.Identifiers `json:"ids,omitempty"`
	Missing       []string               `json:"missing,omitempty"`
	Clarification string                 `json:"clarification,omitempty"`
	Confidence    float64                `json:"confidence"`
	Reason        error                  `json:"-"`
}

// Compiled reports whether the result carries a plan.
func (r Result) Compiled() bool {
	return r.State == StateCompiled
}
