package openrouter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"medisos-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterProvider talks to OpenRouter through its OpenAI-compatible API.
type OpenRouterProvider struct {
	client    *openai.Client
	apiKey    string
	modelName string
}

var _ llm.Provider = &OpenRouterProvider{}

func NewOpenRouterProvider(apiKey, baseURL, modelName string) *OpenRouterProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	return &OpenRouterProvider{
		client:    openai.NewClientWithConfig(cfg),
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (p *OpenRouterProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", llm.ErrNotConfigured
	}

	options := &llm.Options{
		Temperature: 0.2,
		MaxTokens:   512,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages[i] = openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   options.MaxTokens,
		Temperature: float32(options.Temperature),
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &llm.ProviderError{Provider: "openrouter", StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
		return "", &llm.ProviderError{Provider: "openrouter", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &llm.ProviderError{Provider: "openrouter", Err: errors.New("empty choices in response")}
	}

	return resp.Choices[0].Message.Content, nil
}
