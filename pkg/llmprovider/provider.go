package llmprovider

import (
	"context"
	"strings"
)

// Provider is a single chat-completion backend. Name is the configured
// provider key, e.g. "deepseek" or "openrouter".
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
	Capabilities() Capabilities
}

// Request is a provider-neutral chat request. A nil Temperature leaves the
// parameter out of the provider call.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       *float64
	MaxTokens         int
}

// Message is one turn of the conversation sent to a model. Role is one of
// RoleUser, RoleAssistant or RoleSystem.
type Message struct {
	Role  string
	Parts []Part
}

// Part is one text fragment of a message.
type Part struct {
	Text string
}

// Text joins the text parts of m.
func (m Message) Text() string {
	if len(m.Parts) == 1 {
		return m.Parts[0].Text
	}
	var b strings.Builder
	for _, p := range m.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Response is the first choice of a provider answer.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption. Providers may leave it nil.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (u *Usage) inputTokens() int {
	if u == nil {
		return 0
	}
	return u.InputTokens
}

func (u *Usage) outputTokens() int {
	if u == nil {
		return 0
	}
	return u.OutputTokens
}

// Capabilities describes what a model accepts.
type Capabilities struct {
	SupportsTemperature bool
	IsReasoningModel    bool
}
