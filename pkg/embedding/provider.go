package embedding

import "context"

// Provider generates text embeddings, one vector per input text, same order.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
