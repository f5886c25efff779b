package scheduler

import "sync"

// resourceLocks hands out one mutex per resource id.  Holding the mutex
// across "recheck conflicts + write" makes each lifecycle operation
// atomically isolated per resource, so two concurrent approvals of
// overlapping reservations cannot both pass their conflict check.  The
// map is never evicted; it is bounded by the size of the resource catalog.
type resourceLocks struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func newResourceLocks() *resourceLocks {
	return &resourceLocks{locks: make(map[uint64]*sync.Mutex)}
}

// acquire locks the mutex for resourceID and returns it for unlocking.
func (l *resourceLocks) acquire(resourceID uint64) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[resourceID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[resourceID] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m
}
