package search

import (
	"context"
	"fmt"
	"log"
	"strings"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/repository/contract"
	"woodshop-assistant-be/pkg/embedding"
	"woodshop-assistant-be/pkg/rag/policy"
)

// Orchestrator embeds a query and retrieves the nearest transcript chunks.
type Orchestrator struct {
	embedder           embedding.EmbeddingProvider
	documentRepository contract.DocumentRepository
	table              string
	topK               int
	logger             *log.Logger
}

func NewOrchestrator(
	embedder embedding.EmbeddingProvider,
	documentRepository contract.DocumentRepository,
	table string,
	topK int,
	logger *log.Logger,
) *Orchestrator {
	return &Orchestrator{
		embedder:           embedder,
		documentRepository: documentRepository,
		table:              table,
		topK:               topK,
		logger:             logger,
	}
}

// Retrieve embeds the query under the embedding retry policy and runs the
// vector search. Both stages are fatal on failure; retrieval has no silent
// fallback because an answer without context would fabricate citations.
func (o *Orchestrator) Retrieve(ctx context.Context, query string) ([]*entity.RetrievedDocument, error) {
	var vector []float32
	err := policy.Embedding.Do(ctx, func(ctx context.Context) error {
		var embedErr error
		vector, embedErr = o.embedder.Embed(ctx, query)
		return embedErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	documents, err := o.documentRepository.SearchSimilar(ctx, vector, o.table, o.topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	o.logger.Printf("[SEARCH] Retrieved %d documents for query", len(documents))
	return documents, nil
}

// BuildContext renders retrieved documents into the prompt context block.
// Empty input yields an empty string, which downstream treats as no context.
func BuildContext(documents []*entity.RetrievedDocument) string {
	if len(documents) == 0 {
		return ""
	}

	blocks := make([]string, len(documents))
	for i, doc := range documents {
		blocks[i] = fmt.Sprintf("Source: %s\nContent: %s\nURL: %s", doc.Title, doc.Text, doc.Url)
	}
	return strings.Join(blocks, "\n\n")
}
