package llmprovider

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	ProviderDeepSeek   = "deepseek"
	ProviderOpenAI     = "openai"
	ProviderQwen       = "qwen"
	ProviderAlibaba    = "alibaba"
	ProviderOpenRouter = "openrouter"

	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultQwenBaseURL       = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	logPrefix = "pkg.llmprovider"
)
