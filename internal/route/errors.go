package route

import "errors"

var (
	ErrInvalidChatID = errors.New("chat id is required")
	ErrEmptyText     = errors.New("text is required")
	ErrTextTooLong   = errors.New("text is too long")
	ErrUnknownDomain = errors.New("unknown domain")
	ErrRateLimited   = errors.New("too many messages")
	ErrNoTurn        = errors.New("no message recorded for chat")
)
