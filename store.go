package vlist

import "sync"

// storeEntry wraps a value with pass tracking for staleness detection.
type storeEntry[T any] struct {
	value    T
	lastPass uint64
}

// Store is a type-safe keyed state store for hosts that rebuild their view
// every pass (every frame or every render) and address per-list state by ID.
// Entries not accessed during a pass are dropped on the next NextPass call,
// so state for lists that left the screen cleans itself up.
//
// Fully generic: no type assertions, no boxing of primitive values.
//
// Usage:
//
//	// At package level - one store per state type
//	var rowCache = vlist.NewStore[string]()
//
//	// During a render pass
//	line := rowCache.Get(vlist.KeyID(row.Key), "")
//	// ... fill *line if empty, reuse otherwise
//
//	// Once per pass
//	rowCache.NextPass()
type Store[T any] struct {
	entries map[ID]*storeEntry[T]
	pass    uint64
	mu      sync.RWMutex // Protects concurrent access
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[ID]*storeEntry[T])}
}

// Get retrieves the value for id, creating it from defaultVal if absent.
// Returns a pointer to the value, allowing direct modification, and marks
// the entry as used this pass so NextPass keeps it.
//
// Safe for concurrent use.
func (s *Store[T]) Get(id ID, defaultVal T) *T {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if ok {
		s.mu.Lock()
		entry.lastPass = s.pass
		s.mu.Unlock()
		return &entry.value
	}

	s.mu.Lock()
	// Double-check after acquiring the write lock
	if entry, ok = s.entries[id]; ok {
		entry.lastPass = s.pass
		s.mu.Unlock()
		return &entry.value
	}
	entry = &storeEntry[T]{value: defaultVal, lastPass: s.pass}
	s.entries[id] = entry
	s.mu.Unlock()
	return &entry.value
}

// GetIfExists retrieves the value only if it already exists.
// Returns nil otherwise. Does NOT create state or mark the entry as used.
func (s *Store[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.entries[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets the value for an ID, marking it as used this pass.
func (s *Store[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[id]; ok {
		entry.value = value
		entry.lastPass = s.pass
	} else {
		s.entries[id] = &storeEntry[T]{value: value, lastPass: s.pass}
	}
}

// Delete removes the entry for an ID.
func (s *Store[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// NextPass advances the pass counter and drops entries that were not
// accessed during the pass that just ended. Call once per render pass.
func (s *Store[T]) NextPass() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if entry.lastPass < s.pass {
			delete(s.entries, id)
		}
	}
	s.pass++
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all entries immediately.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.entries = make(map[ID]*storeEntry[T])
	s.mu.Unlock()
}
