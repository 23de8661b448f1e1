package retrieval

import (
	"context"
	"sort"
	"sync"
)

type memoryItem struct {
	id        string
	text      string
	embedding []float32
}

// MemoryStore is a brute-force in-memory VectorStore partitioned by scope.
// It backs tests and DB-less deployments; the production path is the
// pgvector-backed store in the repository layer.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]memoryItem // scope -> items in insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]memoryItem)}
}

// Add stores one embedded content item under scope.
func (s *MemoryStore) Add(scope, id, text string, embedding []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[scope] = append(s.items[scope], memoryItem{
		id:        id,
		text:      text,
		embedding: embedding,
	})
}

// SimilaritySearch ranks the items in scope by cosine similarity against
// queryVector, descending, ties keeping insertion order. Items whose
// embedding length differs from the query vector are excluded.
func (s *MemoryStore) SimilaritySearch(ctx context.Context, scope string, queryVector []float32, k int) ([]ContextItem, error) {
	if k <= 0 {
		k = 3
	}

	s.mu.RLock()
	scoped := s.items[scope]
	s.mu.RUnlock()

	var results []ContextItem
	for _, item := range scoped {
		if len(item.embedding) != len(queryVector) {
			continue
		}
		score, err := CosineSimilarity(item.embedding, queryVector)
		if err != nil {
			continue
		}
		results = append(results, ContextItem{
			ID:    item.id,
			Scope: scope,
			Text:  item.text,
			Score: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
