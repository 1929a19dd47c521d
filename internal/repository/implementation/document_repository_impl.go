package implementation

import (
	"context"
	"fmt"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepositoryImpl struct {
	db            *gorm.DB
	allowedTables map[string]bool
}

// NewDocumentRepository creates a repository restricted to the given vector
// tables. The table name arrives as a request parameter, so it is checked
// against the allow-list before it reaches the query builder.
func NewDocumentRepository(db *gorm.DB, allowedTables []string) contract.DocumentRepository {
	allowed := make(map[string]bool, len(allowedTables))
	for _, t := range allowedTables {
		allowed[t] = true
	}
	return &DocumentRepositoryImpl{
		db:            db,
		allowedTables: allowed,
	}
}

type documentRow struct {
	Id              string
	Text            string
	Title           string
	Url             string
	ChunkId         string
	SimilarityScore float64
}

func (r *DocumentRepositoryImpl) SearchSimilar(ctx context.Context, vector []float32, table string, topK int) ([]*entity.RetrievedDocument, error) {
	if !r.allowedTables[table] {
		return nil, fmt.Errorf("table %q is not allow-listed for vector search", table)
	}
	if topK <= 0 {
		topK = 10
	}

	queryVector := pgvector.NewVector(vector)

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (vector <=> query) yields the similarity score. The ORDER BY goes
	// through Clauses because gorm's Order only accepts strings and
	// clause.OrderBy values, and a bare string cannot carry the vector
	// parameter.
	var rows []documentRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select("id, text, title, url, chunk_id, 1 - (vector <=> ?) AS similarity_score", queryVector).
		Where("vector IS NOT NULL").
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "vector <=> ?", Vars: []interface{}{queryVector}},
		}).
		Limit(topK).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("vector search on %s failed: %w", table, err)
	}

	documents := make([]*entity.RetrievedDocument, len(rows))
	for i, row := range rows {
		documents[i] = &entity.RetrievedDocument{
			Id:              row.Id,
			Text:            row.Text,
			Title:           row.Title,
			Url:             row.Url,
			ChunkId:         row.ChunkId,
			SimilarityScore: row.SimilarityScore,
		}
	}
	return documents, nil
}
