package retrieval

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"vendai-assistant-be/pkg/embedding"
)

// ErrEmbeddingUnavailable wraps a failed remote embedding call. It is
// propagated to the caller, never retried silently within the same turn.
var ErrEmbeddingUnavailable = errors.New("embedding unavailable")

// ErrEmptyQuery rejects retrieval calls with nothing to embed.
var ErrEmptyQuery = errors.New("query must not be empty")

// Retriever orchestrates the embedder and a vector store to fetch top-k
// grounding context for a query, always within a single scope.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	vectorStore       VectorStore
	logger            *log.Logger
}

func NewRetriever(embeddingProvider embedding.EmbeddingProvider, vectorStore VectorStore, logger *log.Logger) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		vectorStore:       vectorStore,
		logger:            logger,
	}
}

// Retrieve embeds query and returns up to k scoped context items ranked by
// descending cosine similarity. An empty result is a valid "nothing found"
// outcome, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, scope string, k int) ([]ContextItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embeddingRes, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	items, err := r.vectorStore.SimilaritySearch(ctx, scope, embeddingRes.Embedding.Values, k)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, err
	}

	r.logger.Printf("[DEBUG] Retrieved %d context items for scope %s", len(items), scope)
	return items, nil
}

// JoinContext concatenates item texts into one grounding block.
func JoinContext(items []ContextItem) string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return strings.Join(texts, "\n\n")
}
