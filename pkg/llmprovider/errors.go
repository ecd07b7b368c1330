package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("llm: all providers failed")
	ErrNoProvidersConfigured = errors.New("llm: no providers configured")
	ErrInvalidRequest        = errors.New("llm: invalid request")
	ErrProviderTimeout       = errors.New("llm: provider timed out")
	ErrProviderRateLimited   = errors.New("llm: provider rate limited")
	// ErrEmptyResponse is an answer without choices or text.
	ErrEmptyResponse = errors.New("llm: empty response")
	// ErrMissingCredentials is an enabled provider without an API key.
	ErrMissingCredentials = errors.New("llm: missing credentials")
)

// ProviderError attributes a failure to one provider of the chain.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
