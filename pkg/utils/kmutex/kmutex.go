// Package kmutex provides a keyed mutex for serializing writes per entity ID.
// Project and agent memory records have no optimistic concurrency control in
// every backend, so concurrent pipeline runs against the same entity must be
// serialized by the caller.
package kmutex

import "sync"

// KMutex serializes critical sections per string key. Mutexes are created
// lazily and kept for the lifetime of the KMutex; the key space here (project
// and agent IDs) is small enough that no eviction is needed.
type KMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KMutex {
	return &KMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given key, creating it on first use.
func (k *KMutex) Lock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
}

// Unlock releases the mutex for the given key. Unlocking a key that was never
// locked panics, same as sync.Mutex.
func (k *KMutex) Unlock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	k.mu.Unlock()

	if !ok {
		panic("kmutex: unlock of unknown key " + key)
	}
	m.Unlock()
}
