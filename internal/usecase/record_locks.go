package usecase

import "sync"

// recordLocks serializes read-modify-write cycles on the same record id within
// this process. The zero value is ready to use.
type recordLocks struct {
	mu    sync.Mutex
	locks map[string]*recordLock
}

type recordLock struct {
	sync.Mutex
	waiters int
}

// lock blocks until id is free and returns the matching unlock. Entries are
// dropped once nobody holds or waits for them.
func (l *recordLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*recordLock)
	}
	rl, ok := l.locks[id]
	if !ok {
		rl = &recordLock{}
		l.locks[id] = rl
	}
	rl.waiters++
	l.mu.Unlock()

	rl.Lock()
	return func() {
		rl.Unlock()
		l.mu.Lock()
		rl.waiters--
		if rl.waiters == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *recordLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
