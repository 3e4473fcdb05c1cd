package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"medisos-be/pkg/embedding"
	"medisos-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterProvider generates embeddings through OpenRouter's
// OpenAI-compatible embeddings endpoint.
type OpenRouterProvider struct {
	client    *openai.Client
	apiKey    string
	modelName string
}

var _ embedding.Provider = &OpenRouterProvider{}

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

func (p *OpenRouterProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if p.apiKey == "" {
		return nil, llm.ErrNotConfigured
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(p.modelName),
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &llm.ProviderError{Provider: "openrouter", StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
		return nil, &llm.ProviderError{Provider: "openrouter", Err: err}
	}

	if len(resp.Data) != len(texts) {
		return nil, &llm.ProviderError{
			Provider: "openrouter",
			Err:      fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	vectors := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		vectors[i] = item.Embedding
	}
	return vectors, nil
}
