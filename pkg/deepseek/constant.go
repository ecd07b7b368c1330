package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// ReasonerModel ignores sampling parameters
	ReasonerModel = "deepseek-reasoner"

	// DefaultTimeout bounds a single HTTP round trip
	DefaultTimeout = 60 * time.Second
)
