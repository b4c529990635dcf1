package concurrency

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager_MutualExclusion(t *testing.T) {
	lm := NewLockManager()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := lm.Acquire(ctx, "char-1")
			if err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			defer release()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockManager_IndependentKeys(t *testing.T) {
	lm := NewLockManager()

	releaseA, ok := lm.TryAcquire("a")
	require.True(t, ok)
	defer releaseA()

	releaseB, ok := lm.TryAcquire("b")
	require.True(t, ok, "different keys do not block each other")
	releaseB()

	_, ok = lm.TryAcquire("a")
	assert.False(t, ok, "held key cannot be taken twice")
}

func TestLockManager_AcquireRespectsContext(t *testing.T) {
	lm := NewLockManager()
	release, err := lm.Acquire(context.Background(), "k")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = lm.Acquire(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLockManager_ReleaseIsIdempotent(t *testing.T) {
	lm := NewLockManager()
	release, ok := lm.TryAcquire("k")
	require.True(t, ok)

	release()
	release()

	again, ok := lm.TryAcquire("k")
	require.True(t, ok)
	again()
}
