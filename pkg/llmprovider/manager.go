package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"intent-router/pkg/log"
)

// Config tunes the fallback chain of a Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

// Manager sends a request down an ordered provider chain. Each provider is
// retried up to RetryAttempts times before the next one is tried.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

// NewManager creates a Manager over providers in priority order. A nil cfg
// means one attempt and no fallback.
func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	m := &Manager{providers: providers, l: l}
	if cfg != nil {
		m.cfg = *cfg
	}
	if m.cfg.RetryAttempts < 1 {
		m.cfg.RetryAttempts = 1
	}
	return m
}

// Providers returns the ordered provider chain.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent returns the first successful response of the chain. When
// every provider fails the error wraps ErrAllProvidersFailed together with
// one ProviderError per provider tried.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var failures []error
	for i, p := range m.providers {
		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Errorf("%w after %d provider(s): %w", ErrProviderTimeout, i, err))
			break
		}

		resp, err := m.tryProvider(ctx, p, req)
		if err == nil {
			m.l.Infof(ctx, "%s.GenerateContent: %s/%s answered (in=%d out=%d)",
				logPrefix, p.Name(), p.Model(), resp.Usage.inputTokens(), resp.Usage.outputTokens())
			return resp, nil
		}

		m.l.Warnf(ctx, "%s.GenerateContent: %s/%s failed: %v", logPrefix, p.Name(), p.Model(), err)
		failures = append(failures, &ProviderError{Provider: p.Name(), Err: err})
		if !m.cfg.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(failures...))
}

// tryProvider retries p with a linearly growing delay. Rate limits and
// timeouts end the attempts on p at once.
func (m *Manager) tryProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var err error
	for attempt := range m.cfg.RetryAttempts {
		if attempt > 0 {
			if werr := sleepCtx(ctx, time.Duration(attempt)*m.cfg.RetryDelay); werr != nil {
				return nil, fmt.Errorf("%w: %w", ErrProviderTimeout, werr)
			}
		}

		var resp *Response
		resp, err = p.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrProviderTimeout) {
			err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		if errors.Is(err, ErrProviderRateLimited) || errors.Is(err, ErrProviderTimeout) {
			return nil, err
		}
	}
	return nil, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
