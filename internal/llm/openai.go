package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/logger"
)

// OpenAIProvider talks to any OpenAI-compatible chat completions API
// (OpenAI itself, Groq)
type OpenAIProvider struct {
	name    string
	baseURL string
	client  *openai.Client
	config  Config
	logger  *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	return newOpenAICompatible("openai", config)
}

func newOpenAICompatible(name string, config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}
	clientConfig.HTTPClient = newHTTPClient(config)

	return &OpenAIProvider{
		name:    name,
		baseURL: clientConfig.BaseURL,
		client:  openai.NewClientWithConfig(clientConfig),
		config:  config,
		logger:  logger.OrNop(config.Logger),
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return p.name
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Listing models is the cheapest authenticated call
	_, err := p.client.ListModels(ctx)
	if err != nil {
		p.logger.Warn("model API check failed", zap.String("provider", p.name), zap.Error(err))
		return false
	}
	return true
}

// Answer asks the chat completions API one question
func (p *OpenAIProvider) Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	prompt := promptFor(req)

	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := waitLimiter(ctxWithTimeout, p.config.Limiter, p.baseURL); err != nil {
		return nil, fmt.Errorf("%s rate limit: %w", p.name, err)
	}

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1, // Factual answers from the dataset
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", p.name)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return nil, fmt.Errorf("empty answer from %s", p.name)
	}

	p.logger.Debug("model answered",
		zap.String("provider", p.name),
		zap.String("model", model),
		zap.Int("tokens", resp.Usage.TotalTokens))

	return &AnswerResponse{
		Answer:     answer,
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
