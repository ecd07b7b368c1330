package llmprovider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"intent-router/config"
	"intent-router/pkg/deepseek"
	"intent-router/pkg/log"
)

// InitializeProviders builds the enabled providers of cfg in priority
// order. A provider that fails to build is logged and skipped; the call
// fails only when none is left.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: LLM config is nil", ErrInvalidRequest)
	}

	enabled := slices.DeleteFunc(slices.Clone(cfg.Providers), func(p config.ProviderConfig) bool {
		return !p.Enabled
	})
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	slices.SortStableFunc(enabled, func(a, b config.ProviderConfig) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	providers := make([]Provider, 0, len(enabled))
	var failed []error
	for _, pc := range enabled {
		p, err := createProvider(pc)
		if err != nil {
			l.Warnf(ctx, "%s.InitializeProviders: skipping %s (priority %d): %v", logPrefix, pc.Name, pc.Priority, err)
			failed = append(failed, err)
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no provider could be initialized: %w", errors.Join(failed...))
	}
	return providers, nil
}

// NewManagerConfig converts the string durations of cfg.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	retryDelay, err := parseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, nil
}

// compatible lists the providers served through go-openai with their
// default endpoints.
var compatible = map[string]struct{ name, baseURL string }{
	ProviderOpenAI:     {ProviderOpenAI, defaultOpenAIBaseURL},
	ProviderQwen:       {ProviderQwen, defaultQwenBaseURL},
	ProviderAlibaba:    {ProviderQwen, defaultQwenBaseURL},
	ProviderOpenRouter: {ProviderOpenRouter, defaultOpenRouterBaseURL},
}

func createProvider(pc config.ProviderConfig) (Provider, error) {
	if pc.APIKey == "" {
		return nil, &ProviderError{Provider: pc.Name, Err: ErrMissingCredentials}
	}
	if pc.Model == "" {
		return nil, &ProviderError{Provider: pc.Name, Err: fmt.Errorf("%w: model is required", ErrInvalidRequest)}
	}

	caps := Capabilities{SupportsTemperature: pc.SupportsTemperature, IsReasoningModel: pc.Reasoning}
	name := strings.ToLower(pc.Name)

	if name == ProviderDeepSeek {
		timeout, err := parseDuration(pc.Timeout)
		if err != nil {
			return nil, &ProviderError{Provider: pc.Name, Err: err}
		}
		client, err := deepseek.New(deepseek.Config{APIKey: pc.APIKey, Model: pc.Model, BaseURL: pc.BaseURL, Timeout: timeout})
		if err != nil {
			return nil, &ProviderError{Provider: pc.Name, Err: err}
		}
		caps.IsReasoningModel = caps.IsReasoningModel || pc.Model == deepseek.ReasonerModel
		return NewDeepSeekAdapter(client, caps), nil
	}

	if c, ok := compatible[name]; ok {
		return NewOpenAIAdapter(c.name, pc.APIKey, orDefault(pc.BaseURL, c.baseURL), pc.Model, caps), nil
	}
	return nil, fmt.Errorf("unknown provider: %s", pc.Name)
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
