package keymutex

import (
	"sync"
	"testing"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("emp-1")
			counter++
			km.Unlock("emp-1")
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestKeyMutex_DifferentKeysIndependent(t *testing.T) {
	km := New()
	km.Lock("emp-1")
	defer km.Unlock("emp-1")

	done := make(chan struct{})
	go func() {
		km.Lock("emp-2")
		km.Unlock("emp-2")
		close(done)
	}()

	// Must not block on emp-1's lock.
	<-done
}

func TestKeyMutex_DropsIdleEntries(t *testing.T) {
	km := New()
	km.Lock("emp-1")
	km.Unlock("emp-1")

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(km.locks))
	}
}
