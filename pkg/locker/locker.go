package locker

import (
	"sort"
	"sync"
)

// Locker hands out one mutex per key so every ledger mutation runs as a
// single unit against the accounts it touches.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New new locker
func New() *Locker {
	return &Locker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *Locker) mutex(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}

	return m
}

// Lock acquires the mutexes for all keys in sorted order, so two
// operations touching the same pair of accounts can never deadlock.
// The returned func releases them in reverse order.
func (l *Locker) Lock(keys ...string) func() {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			sorted = append(sorted, key)
		}
	}
	sort.Strings(sorted)

	muxes := make([]*sync.Mutex, len(sorted))
	for i, key := range sorted {
		muxes[i] = l.mutex(key)
		muxes[i].Lock()
	}

	return func() {
		for i := len(muxes) - 1; i >= 0; i-- {
			muxes[i].Unlock()
		}
	}
}
