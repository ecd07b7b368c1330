package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"intent-router/internal/route"
	"intent-router/internal/router"
	"intent-router/internal/turnctx"
)

// Route routes one message with the chat's previous turn as context, then
// stores the message as the chat's latest turn.
func (uc *implUseCase) Route(ctx context.Context, input route.RouteInput) (route.RouteOutput, error) {
	chatID := strings.TrimSpace(input.ChatID)
	text := strings.TrimSpace(input.Text)
	switch {
	case chatID == "":
		return route.RouteOutput{}, route.ErrInvalidChatID
	case text == "":
		return route.RouteOutput{}, route.ErrEmptyText
	case len([]rune(text)) > maxTextChars:
		return route.RouteOutput{}, route.ErrTextTooLong
	}

	if err := uc.turns.Allow(chatID); err != nil {
		uc.l.Warnf(ctx, "internal.route.usecase.Route: chat=%s: %v", chatID, err)
		return route.RouteOutput{}, route.ErrRateLimited
	}

	messageID := strings.TrimSpace(input.MessageID)
	if messageID == "" {
		messageID = uc.newID()
	}
	turnKey := chatID + ":" + messageID

	tc := uc.turns.Context(chatID)
	if input.Context != nil {
		tc = *input.Context
	}

	res := uc.router.Route(ctx, router.Request{
		Domain:  input.Domain,
		Text:    text,
		Context: tc,
		TurnKey: turnKey,
	})
	if errors.Is(res.Reason, router.ErrUnknownDomain) {
		return route.RouteOutput{}, fmt.Errorf("%w: %s", route.ErrUnknownDomain, input.Domain)
	}
	uc.l.Infof(ctx, "internal.route.usecase.Route: turn=%s domain=%s state=%s", turnKey, input.Domain, res.State)

	if err := uc.turns.RecordUser(chatID, messageID, text); err != nil {
		uc.l.Errorf(ctx, "internal.route.usecase.Route: turns.RecordUser: %v", err)
		return route.RouteOutput{}, err
	}

	return route.RouteOutput{
		MessageID: messageID,
		TurnKey:   turnKey,
		Result:    res,
	}, nil
}

// RecordOutput stores the executed action's output for the chat's next turn.
func (uc *implUseCase) RecordOutput(ctx context.Context, input route.RecordOutputInput) error {
	chatID := strings.TrimSpace(input.ChatID)
	if chatID == "" {
		return route.ErrInvalidChatID
	}

	if err := uc.turns.RecordOutput(chatID, input.Output); err != nil {
		if errors.Is(err, turnctx.ErrNoTurn) {
			return route.ErrNoTurn
		}
		uc.l.Errorf(ctx, "internal.route.usecase.RecordOutput: turns.RecordOutput: %v", err)
		return err
	}
	return nil
}
