package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/footbot/internal/model"
	"github.com/ppiankov/footbot/internal/worker"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint
const GroqBaseURL = "https://api.groq.com/openai/v1"

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "groq":
		if config.BaseURL == "" {
			config.BaseURL = GroqBaseURL
		}
		if config.Model == "" {
			config.Model = "llama3-70b-8192"
		}
		return newOpenAICompatible("groq", config)

	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (keyword fallback)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: groq, openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config. A positive
// RequestsPerSecond attaches a per-host limiter.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	config := Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
	if modelConfig.RequestsPerSecond > 0 {
		config.Limiter = worker.NewLimiter(modelConfig.RequestsPerSecond, modelConfig.Burst)
	}
	return config
}
