package keyedmutex

import "sync"

// KeyedMutex serializes work per key. Booking creation locks on the listing ID
// so overlap validation and insert run as one unit; status transitions lock on
// the booking ID. Entries are reference-counted and removed when unused.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*entry)}
}

func (k *KeyedMutex) Lock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KeyedMutex) Unlock(key int64) {
	k.mu.Lock()
	e := k.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
