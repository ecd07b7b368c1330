package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"intent-router/pkg/deepseek"
)

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.ChatClient
	caps   Capabilities
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.ChatClient, caps Capabilities) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client, caps: caps}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:  toDeepSeekMessages(req),
		MaxTokens: req.MaxTokens,
	}
	if a.caps.SupportsTemperature && !a.caps.IsReasoningModel {
		dsReq.Temperature = req.Temperature
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		var apiErr *deepseek.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: %w", ErrEmptyResponse)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Choices[0].Message.Content}}},
		ProviderName: ProviderDeepSeek,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Capabilities returns the configured model capabilities
func (a *DeepSeekAdapter) Capabilities() Capabilities {
	return a.caps
}

func toDeepSeekMessages(req *Request) []deepseek.Message {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, deepseek.Message{Role: RoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, deepseek.Message{Role: m.Role, Content: m.Text()})
	}
	return msgs
}

// chatCompleter is the part of *openai.Client the adapter uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter serves any OpenAI-compatible endpoint (OpenAI, Qwen
// compatible mode, OpenRouter) through go-openai.
type OpenAIAdapter struct {
	name   string
	model  string
	client chatCompleter
	caps   Capabilities
}

// NewOpenAIAdapter creates an adapter named name for model at baseURL.
func NewOpenAIAdapter(name, apiKey, baseURL, model string, caps Capabilities) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &OpenAIAdapter{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(clientConfig),
		caps:   caps,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := openai.ChatCompletionRequest{
		Model:     a.model,
		Messages:  toOpenAIMessages(req),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil && a.caps.SupportsTemperature && !a.caps.IsReasoningModel {
		oaReq.Temperature = float32(*req.Temperature)
		if oaReq.Temperature == 0 {
			// go-openai drops a zero temperature from the request body.
			oaReq.Temperature = math.SmallestNonzeroFloat32
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, oaReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Choices[0].Message.Content}}},
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// Capabilities returns the configured model capabilities
func (a *OpenAIAdapter) Capabilities() Capabilities {
	return a.caps
}

func toOpenAIMessages(req *Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Text()})
	}
	return msgs
}
