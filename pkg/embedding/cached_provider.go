package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider wraps an EmbeddingProvider with a Redis cache keyed by the
// input text. Customer queries repeat a lot ("do you have rice?") and each
// remote embedding call is the slowest hop of the retrieval path.
// The cache is best-effort: any Redis failure falls through to the inner
// provider.
type CachedProvider struct {
	inner EmbeddingProvider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner EmbeddingProvider, rdb *redis.Client, ttl time.Duration) EmbeddingProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedProvider{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (p *CachedProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	key := cacheKey(text, taskType)
	ctx := context.Background()

	if cached, err := p.rdb.Get(ctx, key).Bytes(); err == nil {
		var res EmbeddingResponse
		if err := json.Unmarshal(cached, &res); err == nil {
			return &res, nil
		}
		// Corrupt entry, drop it and regenerate
		p.rdb.Del(ctx, key)
	}

	res, err := p.inner.Generate(text, taskType)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := p.rdb.Set(ctx, key, data, p.ttl).Err(); err != nil {
			log.Printf("[WARN] Failed to cache embedding: %v", err)
		}
	}

	return res, nil
}

func cacheKey(text, taskType string) string {
	sum := sha256.Sum256([]byte(taskType + "\x00" + text))
	return fmt.Sprintf("embedding:%x", sum[:16])
}
