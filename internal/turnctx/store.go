package turnctx

import (
	"fmt"
	"strings"

	"intent-router/internal/intent"
)

// Context returns the previous turn of chatID as router input. An unknown
// or expired chat yields an empty context.
func (s *Store) Context(chatID string) intent.TurnContext {
	t, ok := s.turns.Get(chatID)
	if !ok {
		return intent.TurnContext{}
	}
	return intent.TurnContext{
		PreviousUserText:     t.UserText,
		PreviousActionOutput: t.ActionOutput,
	}
}

// RecordUser stores text as the latest user turn of chatID. The output of
// the turn before is dropped with it.
func (s *Store) RecordUser(chatID, messageID, text string) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrInvalidChatID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns.Add(chatID, Turn{
		MessageID: messageID,
		UserText:  text,
		UpdatedAt: s.now(),
	})
	return nil
}

// RecordOutput attaches the executed action's output to the latest user
// turn of chatID.
func (s *Store) RecordOutput(chatID string, output any) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrInvalidChatID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.turns.Get(chatID)
	if !ok {
		return fmt.Errorf("%s.RecordOutput: %w: %s", logPrefix, ErrNoTurn, chatID)
	}
	t.ActionOutput = output
	t.UpdatedAt = s.now()
	s.turns.Add(chatID, t)
	return nil
}

// Turn returns the stored turn of chatID.
func (s *Store) Turn(chatID string) (Turn, bool) {
	return s.turns.Get(chatID)
}

// Forget removes chatID's turn.
func (s *Store) Forget(chatID string) {
	s.turns.Remove(chatID)
}

// Allow reports whether chatID may route another message now.
func (s *Store) Allow(chatID string) error {
	return s.limiter.allow(chatID)
}
