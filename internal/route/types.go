package route

import (
	"intent-router/internal/intent"
	"intent-router/internal/router"
)

// RouteInput is one incoming chat message.
type RouteInput struct {
	Domain    string
	ChatID    string
	MessageID string
	Text      string

	// Context overrides the stored previous turn when set.
	Context *intent.TurnContext
}

// RouteOutput is the routing result plus the identifiers of the turn.
type RouteOutput struct {
	MessageID string
	TurnKey   string
	Result    router.Result
}

// RecordOutputInput carries the output of the action executed for the
// chat's latest turn.
type RecordOutputInput struct {
	ChatID string
	Output any
}
