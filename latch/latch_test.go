package latch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTryLockOnFreeLatchSucceeds(t *testing.T) {
	var l Latch
	require.True(t, l.TryLock())
}

func TestTryLockOnHeldLatchFails(t *testing.T) {
	var l Latch
	l.Lock()
	require.False(t, l.TryLock())
}

func TestUnlockThenTryLockSucceeds(t *testing.T) {
	var l Latch
	l.Lock()
	l.Unlock()
	require.True(t, l.TryLock())
}

// TestLockExcludesConcurrentHolders hammers the same latch from many
// goroutines and checks it is never observed held by two of them at once.
func TestLockExcludesConcurrentHolders(t *testing.T) {
	var l Latch
	var holders int32
	var maxObserved int32
	var mu sync.Mutex

	var wg sync.WaitGroup
	const goroutines = 32
	const iterations = 200
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				l.Lock()
				mu.Lock()
				holders++
				if holders > maxObserved {
					maxObserved = holders
				}
				mu.Unlock()

				time.Sleep(time.Microsecond)

				mu.Lock()
				holders--
				mu.Unlock()
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, maxObserved)
}

func TestZeroValueLatchStartsFree(t *testing.T) {
	var l Latch
	require.True(t, l.TryLock())
	l.Unlock()
}
