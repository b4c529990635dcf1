package concurrency

import (
	"context"
	"sync"
)

// LockManager handles named locks. Each key maps to a one-slot channel so
// waiters can give up when their context is cancelled.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

func (lm *LockManager) slot(key string) chan struct{} {
	lock, _ := lm.locks.LoadOrStore(key, make(chan struct{}, 1))
	return lock.(chan struct{})
}

// Acquire blocks until the named lock is held or ctx is done.
// The returned release func must be called exactly once.
func (lm *LockManager) Acquire(ctx context.Context, key string) (func(), error) {
	ch := lm.slot(key)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// TryAcquire takes the named lock only if it is free
func (lm *LockManager) TryAcquire(key string) (func(), bool) {
	ch := lm.slot(key)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, true
	default:
		return nil, false
	}
}
