package llmprovider

import (
	"context"
	"fmt"
	"strings"
)

// Completer is the prompt-in, text-out surface the intent extractor needs.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)
	Capabilities() Capabilities
}

// CompleteOptions carries optional sampling parameters.
type CompleteOptions struct {
	Temperature *float64
	MaxTokens   int
}

var _ Completer = (*Manager)(nil)

// Complete sends prompt as a single user message through the provider chain.
func (m *Manager) Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrInvalidRequest)
	}

	resp, err := m.GenerateContent(ctx, &Request{
		Messages:    []Message{{Role: RoleUser, Parts: []Part{{Text: prompt}}}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	text := resp.Content.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s returned no text", ErrEmptyResponse, resp.ProviderName)
	}
	return text, nil
}

// Capabilities folds the chain: temperature is supported only when every
// provider accepts it, and any reasoning provider marks the chain as one.
func (m *Manager) Capabilities() Capabilities {
	if len(m.providers) == 0 {
		return Capabilities{}
	}
	caps := Capabilities{SupportsTemperature: true}
	for _, p := range m.providers {
		c := p.Capabilities()
		caps.SupportsTemperature = caps.SupportsTemperature && c.SupportsTemperature
		caps.IsReasoningModel = caps.IsReasoningModel || c.IsReasoningModel
	}
	return caps
}
