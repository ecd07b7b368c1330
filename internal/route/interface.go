package route

import (
	"context"

	"intent-router/internal/intent"
)

// UseCase routes chat turns and keeps each chat's previous turn.
type UseCase interface {
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
	RecordOutput(ctx context.Context, input RecordOutputInput) error
}

// TurnStore is the per-chat previous-turn memory the use case reads and
// writes around each routing call.
type TurnStore interface {
	Context(chatID string) intent.TurnContext
	RecordUser(chatID, messageID, text string) error
	RecordOutput(chatID string, output any) error
	Allow(chatID string) error
}
