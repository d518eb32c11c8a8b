package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	keyed := NewKeyedMutex()

	const iterations = 500

	counter := 0
	var wg sync.WaitGroup
	for range iterations {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := keyed.Lock("+989121112233")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, iterations, counter)
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	keyed := NewKeyedMutex()

	unlockA := keyed.Lock("customer-a")

	done := make(chan struct{})
	go func() {
		unlockB := keyed.Lock("customer-b")
		unlockB()
		close(done)
	}()

	// customer-b must proceed while customer-a's lock is held.
	<-done
	unlockA()
}

func TestKeyedMutex_EvictsReleasedKeys(t *testing.T) {
	keyed := NewKeyedMutex()

	unlock := keyed.Lock("customer-a")
	assert.Equal(t, 1, keyed.Len())

	unlock()
	assert.Equal(t, 0, keyed.Len())
}
