package deepseek

import "context"

// ChatClient is the chat completions surface of the DeepSeek API.
type ChatClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
