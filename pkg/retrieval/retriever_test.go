package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"vendai-assistant-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	values, ok := s.vectors[text]
	if !ok {
		values = []float32{0, 0, 1}
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: values},
	}, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRetrieveRanksByDescendingSimilarity(t *testing.T) {
	store := NewMemoryStore()
	store.Add("shop", "a", "closest", []float32{0, 0.1, 1})
	store.Add("shop", "b", "farther", []float32{1, 0, 0})
	store.Add("shop", "c", "middle", []float32{0, 1, 1})

	r := NewRetriever(&stubEmbedder{}, store, discardLogger())
	items, err := r.Retrieve(context.Background(), "anything", "shop", 3)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "closest", items[0].Text)
	assert.Equal(t, "middle", items[1].Text)
	assert.Equal(t, "farther", items[2].Text)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i].Score, items[i-1].Score)
	}
}

func TestRetrieveScopeIsolation(t *testing.T) {
	store := NewMemoryStore()
	store.Add("shop-a", "1", "alpha content", []float32{0, 0, 1})
	store.Add("shop-b", "2", "beta content", []float32{0, 0, 1})

	r := NewRetriever(&stubEmbedder{}, store, discardLogger())

	items, err := r.Retrieve(context.Background(), "query", "shop-a", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alpha content", items[0].Text)

	items, err = r.Retrieve(context.Background(), "query", "shop-missing", 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRetrieveExcludesMismatchedDimensions(t *testing.T) {
	store := NewMemoryStore()
	store.Add("shop", "good", "usable", []float32{0, 0, 1})
	store.Add("shop", "stale", "old embedding version", []float32{1, 0})

	r := NewRetriever(&stubEmbedder{}, store, discardLogger())
	items, err := r.Retrieve(context.Background(), "query", "shop", 5)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "usable", items[0].Text)
}

func TestRetrieveEmptyQuery(t *testing.T) {
	r := NewRetriever(&stubEmbedder{}, NewMemoryStore(), discardLogger())

	_, err := r.Retrieve(context.Background(), "   ", "shop", 3)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRetrieveEmbeddingFailure(t *testing.T) {
	r := NewRetriever(&stubEmbedder{err: errors.New("connection refused")}, NewMemoryStore(), discardLogger())

	_, err := r.Retrieve(context.Background(), "query", "shop", 3)
	assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
}

func TestRetrieveStableAcrossCalls(t *testing.T) {
	store := NewMemoryStore()
	// identical embeddings tie; insertion order must hold
	store.Add("shop", "first", "first text", []float32{0, 0, 1})
	store.Add("shop", "second", "second text", []float32{0, 0, 1})

	r := NewRetriever(&stubEmbedder{}, store, discardLogger())

	for i := 0; i < 5; i++ {
		items, err := r.Retrieve(context.Background(), "query", "shop", 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "first", items[0].ID)
		assert.Equal(t, "second", items[1].ID)
	}
}

func TestJoinContext(t *testing.T) {
	joined := JoinContext([]ContextItem{{Text: "a"}, {Text: "b"}})
	assert.Equal(t, "a\n\nb", joined)
	assert.Equal(t, "", JoinContext(nil))
}
