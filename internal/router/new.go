// Package router orchestrates one routing turn: deterministic fast path,
// model fallback, confidence gate and domain compiler.
package router

import (
	"sort"
	"time"

	"intent-router/internal/modelextract"
	"intent-router/pkg/datemath"
	"intent-router/pkg/log"
)

// Dispatcher is the Router over a fixed set of domains.
type Dispatcher struct {
	l             log.Logger
	cfg           Config
	minConfidence float64
	models        ModelResolver
	extract       *modelextract.Extractor
	domains       map[string]Domain
}

var _ Router = (*Dispatcher)(nil)

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for the model prompt's date context.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a Dispatcher. models may be nil when the model path is
// disabled; a nil resolver degrades every non-matching turn.
func New(l log.Logger, dates *datemath.Parser, cfg Config, models ModelResolver, domains []Domain, opts ...Option) *Dispatcher {
	minConfidence := DefaultMinConfidence
	if cfg.MinConfidence != nil {
		minConfidence = *cfg.MinConfidence
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	if cfg.ModelTimeout <= 0 {
		cfg.ModelTimeout = DefaultModelTimeout
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	var extractOpts []modelextract.Option
	if o.now != nil {
		extractOpts = append(extractOpts, modelextract.WithClock(o.now))
	}

	byName := make(map[string]Domain, len(domains))
	for _, d := range domains {
		byName[d.Name()] = d
	}

	return &Dispatcher{
		l:             l,
		cfg:           cfg,
		minConfidence: minConfidence,
		models:        models,
		extract: modelextract.New(l, dates, modelextract.Config{
			MaxInputChars: cfg.MaxInputChars,
			Timeout:       cfg.ModelTimeout,
		}, extractOpts...),
		domains: byName,
	}
}

// Domains returns the registered domain names, sorted.
func (r *Dispatcher) Domains() []string {
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
