package llm

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/util"
	"github.com/ppiankov/footbot/internal/worker"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Answer asks the model one football question grounded on the dataset
	Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnswerRequest contains the input for one question
type AnswerRequest struct {
	// Question is the user's message
	Question string

	// Dataset is the reference data prepended to the prompt
	Dataset string

	// Prompt replaces the default prompt when set
	Prompt string

	// Model overrides the configured model
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnswerResponse contains the model's answer
type AnswerResponse struct {
	Answer     string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "groq", "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Groq/OpenAI
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	// Limiter throttles calls per API host (optional)
	Limiter *worker.Limiter

	Logger *zap.Logger
}

const systemPrompt = "Você é um assistente especializado em futebol e na Copa do Mundo FIFA. Responda sempre em português, de forma curta e objetiva."

// BuildPrompt combines the dataset with the question and asks for an answer
// restricted to that data
func BuildPrompt(dataset, question string) string {
	var b strings.Builder
	b.WriteString(dataset)
	b.WriteString("\n\nPERGUNTA: ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\n\nResponda em português baseado APENAS nos dados fornecidos acima:")
	return b.String()
}

func promptFor(req AnswerRequest) string {
	if req.Prompt != "" {
		return req.Prompt
	}
	return BuildPrompt(req.Dataset, req.Question)
}

func newHTTPClient(config Config) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
		},
	}
}

func waitLimiter(ctx context.Context, limiter *worker.Limiter, baseURL string) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx, baseURL)
}
