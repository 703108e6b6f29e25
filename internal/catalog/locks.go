package catalog

import "sync"

// entityLocks provides a mutex per entity ID. The store offers no
// optimistic-concurrency check, so without these two concurrent updates to the
// same document would race read-modify-write and lose one of the updates.
//
// Locks are never evicted; the map grows with the number of distinct entities
// touched, which is bounded by the catalog size.
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{locks: make(map[string]*sync.Mutex)}
}

func (e *entityLocks) get(key string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.locks[key]
	if !ok {
		m = &sync.Mutex{}
		e.locks[key] = m
	}
	return m
}

// Lock acquires the lock for one entity and returns the release func.
func (e *entityLocks) Lock(key string) func() {
	m := e.get(key)
	m.Lock()
	return m.Unlock
}

// LockPair acquires the locks for two entities in lexicographic key order, so
// every caller takes them in the same global order.
func (e *entityLocks) LockPair(a, b string) func() {
	if a == b {
		return e.Lock(a)
	}
	if b < a {
		a, b = b, a
	}
	first := e.get(a)
	second := e.get(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
