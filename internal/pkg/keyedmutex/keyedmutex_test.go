package keyedmutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := New()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock(1)
			defer km.Unlock(1)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := New()

	km.Lock(1)
	done := make(chan struct{})
	go func() {
		// a different key must not block
		km.Lock(2)
		km.Unlock(2)
		close(done)
	}()
	<-done
	km.Unlock(1)
}

func TestKeyedMutex_EntriesAreReclaimed(t *testing.T) {
	km := New()

	km.Lock(1)
	km.Unlock(1)
	km.Lock(2)
	km.Unlock(2)

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
