package modelextract

import (
	"time"

	"intent-router/internal/intent"
	"intent-router/pkg/datemath"
	"intent-router/pkg/log"
)

// Spec is what a domain hands the extractor: its instruction block and the
// schema the completion must satisfy.
type Spec struct {
	Domain       string
	Instructions string
	Schema       *intent.Schema
}

// Config bounds prompt size and call duration.
type Config struct {
	MaxInputChars int
	Timeout       time.Duration
}

// Extractor turns an utterance into an Intent with one model call and at
// most one retry.
type Extractor struct {
	l     log.Logger
	dates *datemath.Parser
	cfg   Config
	now   func() time.Time
}
