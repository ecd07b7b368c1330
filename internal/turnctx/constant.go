package turnctx

import "time"

const (
	logPrefix = "internal.turnctx"

	DefaultTTL             = 30 * time.Minute
	DefaultMaxChats        = 10000
	DefaultRateLimitPerMin = 30

	// limiterTTL is how long an idle chat keeps its limiter.
	limiterTTL = 5 * time.Minute
)
