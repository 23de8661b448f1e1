package memory

import (
	"vendai-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps conversation sessions in process memory.
// Sessions never expire; a restart starts everyone from a fresh session.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.CustomerID, session, cache.NoExpiration)
}

func (r *SessionRepository) Get(customerID string) (*store.Session, bool) {
	if x, found := r.cache.Get(customerID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(customerID string) {
	r.cache.Delete(customerID)
}
