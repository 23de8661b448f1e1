package vector

import (
	"context"

	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/pkg/retrieval"
)

// PgStore adapts the pgvector-backed knowledge embedding repository to the
// retrieval.VectorStore interface, keeping similarity search in Postgres.
type PgStore struct {
	uowFactory unitofwork.RepositoryFactory
	threshold  float64
}

func NewPgStore(uowFactory unitofwork.RepositoryFactory, threshold float64) *PgStore {
	return &PgStore{
		uowFactory: uowFactory,
		threshold:  threshold,
	}
}

func (s *PgStore) SimilaritySearch(ctx context.Context, scope string, queryVector []float32, k int) ([]retrieval.ContextItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(ctx, scope, queryVector, k, s.threshold)
	if err != nil {
		return nil, err
	}

	items := make([]retrieval.ContextItem, 0, len(scored))
	for _, se := range scored {
		items = append(items, retrieval.ContextItem{
			ID:    se.Embedding.Id.String(),
			Scope: se.Embedding.Scope,
			Text:  se.Embedding.Content,
			Score: se.Similarity,
		})
	}
	return items, nil
}
