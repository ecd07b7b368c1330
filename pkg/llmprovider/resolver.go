package llmprovider

import (
	"context"
	"fmt"
	"sync"

	"intent-router/config"
	"intent-router/pkg/log"
)

// Resolver builds the provider chain on first use. A failed resolution is
// not cached, so fixing credentials does not need a restart.
type Resolver struct {
	cfg    *config.LLMConfig
	logger log.Logger

	mu      sync.Mutex
	manager *Manager
}

// NewResolver creates a lazy resolver over cfg.
func NewResolver(cfg *config.LLMConfig, l log.Logger) *Resolver {
	return &Resolver{cfg: cfg, logger: l}
}

// ResolveModel returns the provider chain, initialising it if needed.
func (r *Resolver) ResolveModel(ctx context.Context) (Completer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.manager != nil {
		return r.manager, nil
	}

	providers, err := InitializeProviders(ctx, r.cfg, r.logger)
	if err != nil {
		return nil, fmt.Errorf("%s.ResolveModel: %w", logPrefix, err)
	}
	mcfg, err := NewManagerConfig(r.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s.ResolveModel: %w", logPrefix, err)
	}

	r.manager = NewManager(providers, mcfg, r.logger)
	return r.manager, nil
}
