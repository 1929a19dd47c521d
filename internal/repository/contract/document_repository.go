package contract

import (
	"context"

	"woodshop-assistant-be/internal/entity"
)

// DocumentRepository runs nearest-neighbor searches over the transcript
// tables. A failed query surfaces as an error, not an empty slice; no matches
// and cannot-search are different outcomes.
type DocumentRepository interface {
	// SearchSimilar returns up to topK documents from table ordered by
	// descending similarity. The table name must be allow-listed.
	SearchSimilar(ctx context.Context, vector []float32, table string, topK int) ([]*entity.RetrievedDocument, error)
}
