package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// flakyBus records every publish and fails while failWhen says so
type flakyBus struct {
	mu       sync.Mutex
	calls    []Event
	stamps   []time.Time
	failWhen func(call int) bool
	delay    time.Duration
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	b.stamps = append(b.stamps, time.Now())
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.failWhen != nil && b.failWhen(n) {
		return errors.New("subscriber unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *flakyBus) callTimes() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.stamps...)
}

func sampleCharacter() *domain.Character {
	return &domain.Character{ID: "c-1", Username: "ada", Name: "Ada", TotalXP: 420, Level: 4}
}

func newTestPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })
	return rp, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, skipped, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Zero(t, skipped)
	return entries
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	bus := &flakyBus{}
	rp, path := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), NewLevelUpEvent(sampleCharacter(), 3, 4, "activity"))

	assert.Equal(t, 1, bus.callCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failWhen: func(call int) bool { return call == 1 }}
	rp, path := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), NewQuestCompletedEvent(sampleCharacter(), "first-steps", 50))

	assert.Eventually(t, func() bool { return bus.callCount() == 2 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	bus := &flakyBus{failWhen: func(int) bool { return true }}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, 2, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewStatPrestigedEvent("c-1", domain.StatFocus, 1))

	// initial attempt plus two retries
	require.Eventually(t, func() bool { return bus.callCount() >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, StatPrestiged, entries[0].Event.Type)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, "subscriber unavailable", entries[0].LastError)
	assert.Equal(t, 3, entries[0].Attempts)

	payload, err := DecodePayload[domain.StatPrestigedPayload](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.StatFocus, payload.Stat)
}

func TestResilientPublisher_FullQueueDeadLettersImmediately(t *testing.T) {
	bus := &flakyBus{failWhen: func(int) bool { return true }, delay: 5 * time.Millisecond}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no retry worker is started, so the queue only drains at shutdown
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), NewStreakExtendedEvent("c-1", i+1, "2026-03-01"))
	}

	assert.Len(t, readDeadLetters(t, path), 3)
	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ShutdownFlushesPendingRetries(t *testing.T) {
	bus := &flakyBus{failWhen: func(call int) bool { return call <= 2 }}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewCharacterCreatedEvent(sampleCharacter()))
	rp.PublishWithRetry(context.Background(), NewCharacterCreatedEvent(sampleCharacter()))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// both retries are attempted once more during shutdown and succeed
	assert.Equal(t, 4, bus.callCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_BacksOffExponentially(t *testing.T) {
	bus := &flakyBus{failWhen: func(call int) bool { return call < 4 }}
	base := 40 * time.Millisecond
	rp, _ := newTestPublisher(t, bus, 5, base)

	rp.PublishWithRetry(context.Background(), NewLevelUpEvent(sampleCharacter(), 1, 2, "quest"))

	require.Eventually(t, func() bool { return bus.callCount() >= 3 }, 2*time.Second, 5*time.Millisecond)
	stamps := bus.callTimes()
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), base)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 2*base)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	const workers, perWorker = 8, 5
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				rp.PublishWithRetry(context.Background(), NewStreakExtendedEvent("c-1", j+1, "2026-03-01"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, bus.callCount())
}

func TestNewResilientPublisher_DefaultsRetries(t *testing.T) {
	rp, _ := newTestPublisher(t, &flakyBus{}, 0, time.Millisecond)
	assert.Equal(t, RetryMaxAttempts, rp.maxRetries)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, base, CalculateRetryDelay(base, 0))
	assert.Equal(t, base, CalculateRetryDelay(base, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(base, 12))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(base, 64))
}
