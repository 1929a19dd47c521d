package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	// Embed converts text into a fixed-dimension vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the vector width produced by this provider.
	Dimension() int
}
