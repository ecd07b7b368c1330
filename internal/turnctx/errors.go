package turnctx

import "errors"

var (
	ErrInvalidChatID = errors.New("chat id is required")
	ErrNoTurn        = errors.New("no user turn recorded for chat")
	ErrRateLimited   = errors.New("rate limit exceeded")
)
