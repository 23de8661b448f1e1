package store

import "sync"

// KeyedMutex serializes access per key while leaving distinct keys fully
// independent. The chat service locks on the customer id so concurrent
// messages from one customer cannot interleave stage transitions.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
// Mutexes are never evicted; the key space is bounded by the set of
// customers seen in one process lifetime, same as the sessions themselves.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
