package retrieval

import "context"

// ContextItem is one ranked piece of knowledge content.
type ContextItem struct {
	ID    string  `json:"id"`
	Scope string  `json:"scope"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// VectorStore answers scoped similarity queries over pre-embedded content.
// Implementations must never return items from outside the requested scope
// and must order results by descending score.
type VectorStore interface {
	SimilaritySearch(ctx context.Context, scope string, queryVector []float32, k int) ([]ContextItem, error)
}
