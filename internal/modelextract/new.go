// Package modelextract asks a language model for a schema-valid intent when
// no deterministic rule matched.
package modelextract

import (
	"time"

	"intent-router/pkg/datemath"
	"intent-router/pkg/log"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used for the date context.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New creates an Extractor. Zero config values take the defaults.
func New(l log.Logger, dates *datemath.Parser, cfg Config, opts ...Option) *Extractor {
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	e := &Extractor{
		l:     l,
		dates: dates,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
