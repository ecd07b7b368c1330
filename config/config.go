package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Router      RouterConfig
	LLM         LLMConfig
	TurnContext TurnContextConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RouterConfig controls the intent routing pipeline.
type RouterConfig struct {
	Enabled       bool
	ModelEnabled  bool
	MinConfidence float64
	MaxInputChars int
	ModelTimeout  time.Duration
	Timezone      string
}

// LLMConfig configures the provider chain behind the model extractor.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig describes one model provider.
type ProviderConfig struct {
	Name                string
	Enabled             bool
	Priority            int
	APIKey              string
	BaseURL             string
	Model               string
	Timeout             string
	SupportsTemperature bool
	Reasoning           bool
}

// TurnContextConfig sizes the per-chat previous-turn store.
type TurnContextConfig struct {
	TTL             time.Duration
	MaxChats        int
	RateLimitPerMin int
}

// Load reads config.yaml from the usual locations, then environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile reads the given file instead of searching for config.yaml.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Router
	cfg.Router.Enabled = v.GetBool("router.enabled")
	cfg.Router.ModelEnabled = v.GetBool("router.model_enabled")
	cfg.Router.MinConfidence = v.GetFloat64("router.min_confidence")
	cfg.Router.MaxInputChars = v.GetInt("router.max_input_chars")
	cfg.Router.ModelTimeout = v.GetDuration("router.model_timeout")
	cfg.Router.Timezone = v.GetString("router.timezone")

	// LLM
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:                getStringFromMap(providerMap, "name"),
					Enabled:             getBoolFromMap(providerMap, "enabled", false),
					Priority:            getIntFromMap(providerMap, "priority"),
					APIKey:              expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:             getStringFromMap(providerMap, "base_url"),
					Model:               getStringFromMap(providerMap, "model"),
					Timeout:             getStringFromMap(providerMap, "timeout"),
					SupportsTemperature: getBoolFromMap(providerMap, "supports_temperature", true),
					Reasoning:           getBoolFromMap(providerMap, "reasoning", false),
				})
			}
		}
	}

	// Turn context
	cfg.TurnContext.TTL = v.GetDuration("turn_context.ttl")
	cfg.TurnContext.MaxChats = v.GetInt("turn_context.max_chats")
	cfg.TurnContext.RateLimitPerMin = v.GetInt("turn_context.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Router defaults
	v.SetDefault("router.enabled", true)
	v.SetDefault("router.model_enabled", true)
	v.SetDefault("router.min_confidence", 0.7)
	v.SetDefault("router.max_input_chars", 500)
	v.SetDefault("router.model_timeout", "15s")
	v.SetDefault("router.timezone", "Europe/Amsterdam")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "30s")

	v.SetDefault("turn_context.ttl", "30m")
	v.SetDefault("turn_context.max_chats", 10000)
	v.SetDefault("turn_context.rate_limit_per_min", 30)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func validate(cfg *Config) error {
	if cfg.Router.MinConfidence < 0 || cfg.Router.MinConfidence > 1 {
		return fmt.Errorf("router.min_confidence must be within [0,1], got %v", cfg.Router.MinConfidence)
	}
	if cfg.Router.MaxInputChars <= 0 {
		return fmt.Errorf("router.max_input_chars must be positive")
	}
	if _, err := time.LoadLocation(cfg.Router.Timezone); err != nil {
		return fmt.Errorf("router.timezone: %w", err)
	}
	return validateLLMConfig(&cfg.LLM)
}

// validateLLMConfig checks the provider list. An empty list is valid: the
// router then runs on the deterministic path only.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
		if provider.Timeout != "" {
			if _, err := time.ParseDuration(provider.Timeout); err != nil {
				return fmt.Errorf("provider %s: invalid timeout: %w", provider.Name, err)
			}
		}
	}

	for _, d := range []string{cfg.RetryDelay, cfg.MaxTotalTimeout} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("llm: invalid duration %q: %w", d, err)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string, def bool) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return def
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
