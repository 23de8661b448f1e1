package contract

import (
	"context"

	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKnowledgeEmbedding wraps KnowledgeEmbedding with its similarity score
type ScoredKnowledgeEmbedding struct {
	Embedding  *entity.KnowledgeEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type KnowledgeEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.KnowledgeEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.KnowledgeEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByScope(ctx context.Context, scope string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings in the scope with their
	// similarity to the query vector, filtered by threshold.
	SearchSimilarWithScore(ctx context.Context, scope string, embedding []float32, limit int, threshold float64) ([]*ScoredKnowledgeEmbedding, error)
}
