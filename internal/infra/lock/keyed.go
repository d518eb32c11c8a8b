// Package lock provides a keyed mutex that serializes conversation
// transitions per customer while letting distinct customers proceed in
// parallel.
package lock

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one logical lock per key. Entries are evicted as soon
// as the last holder releases, so the map does not grow with the customer
// population.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*lockEntry),
	}
}

// Lock acquires the lock for key, blocking while another holder has it.
// The returned function releases the lock and must be called exactly once.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		entry = &lockEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// Len returns the number of keys currently tracked.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.entries)
}
