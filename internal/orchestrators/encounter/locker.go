package encounter

import "sync"

// Locker serializes turn mutations per encounter. Storage writes are
// last-writer-wins, so two concurrent advances on the same encounter
// can both commit; deployments that want strict ordering plug in
// NewMutexLocker, single-writer deployments keep the no-op default.
type Locker interface {
	// Lock acquires the encounter's lock and returns its release func
	Lock(encounterID string) (unlock func())
}

// NoopLocker performs no locking.
type NoopLocker struct{}

// Lock implements Locker.
func (NoopLocker) Lock(string) func() {
	return func() {}
}

// MutexLocker holds one mutex per encounter ID. Mutexes are never
// reaped; the map grows with the number of distinct encounters mutated
// over the process lifetime.
type MutexLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMutexLocker creates a per-encounter mutex locker.
func NewMutexLocker() *MutexLocker {
	return &MutexLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock implements Locker.
func (l *MutexLocker) Lock(encounterID string) func() {
	l.mu.Lock()
	m, ok := l.locks[encounterID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[encounterID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
