package turnctx

import "time"

// Config bounds the store and the per-chat request rate.
type Config struct {
	TTL             time.Duration
	MaxChats        int
	RateLimitPerMin int
}

// Turn is the last user turn of one chat and, once recorded, the output of
// the action it led to.
type Turn struct {
	MessageID    string
	UserText     string
	ActionOutput any
	UpdatedAt    time.Time
}
