package progression

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/database/memory"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/quest"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

const testProof = "https://example.com/proof.jpg"

// day0 is mid-morning so whole-day steps never cross midnight
var day0 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) AddDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, n)
}

// recordingPublisher captures published events in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type testEnv struct {
	svc       *service
	store     *memory.Store
	publisher *recordingPublisher
	clock     *testClock
}

func setupService(t testing.TB) *testEnv {
	t.Helper()

	quests, err := quest.LoadCatalog("")
	require.NoError(t, err)

	store := memory.NewStore()
	publisher := &recordingPublisher{}
	clock := &testClock{now: day0}
	resolver := boss.NewResolver(rand.New(rand.NewSource(7)))

	svc := NewService(store, resolver, quests, publisher, Config{Location: time.UTC}).(*service)
	svc.now = clock.Now

	return &testEnv{svc: svc, store: store, publisher: publisher, clock: clock}
}

func (e *testEnv) createCharacter(t *testing.T, username string) *domain.Character {
	t.Helper()
	c, err := e.svc.CreateCharacter(context.Background(), domain.CreateCharacterInput{Name: "Hero " + username, Username: username})
	require.NoError(t, err)
	e.publisher.Reset()
	return c
}

// mutate edits a stored character outside the service and drops it from the cache
func (e *testEnv) mutate(t *testing.T, id string, fn func(c *domain.Character)) {
	t.Helper()
	ctx := context.Background()
	tx, err := e.store.BeginCharacterTx(ctx, id)
	require.NoError(t, err)
	c, err := tx.GetCharacter(ctx)
	require.NoError(t, err)
	fn(c)
	require.NoError(t, tx.UpdateCharacter(ctx, c))
	require.NoError(t, tx.Commit(ctx))
	e.svc.Invalidate(id)
}

// addBoss stores a boss with a known weakness and optionally targets it
func (e *testEnv) addBoss(t *testing.T, characterID string, hp int, weakness domain.Stat, active bool) *domain.UserBoss {
	t.Helper()
	ctx := context.Background()
	b := &domain.UserBoss{
		ID:           uuid.NewString(),
		OwnerID:      characterID,
		Name:         "Calculus",
		MaxHP:        hp,
		CurrentHP:    hp,
		XPReward:     boss.XPRewardFor(hp),
		WeaknessStat: weakness,
		Loot:         []string{},
		CreatedAt:    day0,
	}
	tx, err := e.store.BeginCharacterTx(ctx, characterID)
	require.NoError(t, err)
	require.NoError(t, tx.InsertBoss(ctx, b))
	if active {
		c, err := tx.GetCharacter(ctx)
		require.NoError(t, err)
		c.ActiveBossID = b.ID
		require.NoError(t, tx.UpdateCharacter(ctx, c))
	}
	require.NoError(t, tx.Commit(ctx))
	e.svc.Invalidate(characterID)
	return b
}

func (e *testEnv) log(t *testing.T, characterID, activityID string, minutes int) *domain.LogResult {
	t.Helper()
	res, err := e.svc.LogActivity(context.Background(), characterID, activityID, domain.LogOptions{
		Minutes:  minutes,
		ProofURL: testProof,
	})
	require.NoError(t, err)
	return res
}

// pause blocks the first caller of hit until resumed. Later callers pass through.
type pause struct {
	armed   atomic.Bool
	reached chan struct{}
	resume  chan struct{}
}

func newPause() *pause {
	p := &pause{reached: make(chan struct{}), resume: make(chan struct{})}
	p.armed.Store(true)
	return p
}

func (p *pause) hit() {
	if p.armed.CompareAndSwap(true, false) {
		close(p.reached)
		<-p.resume
	}
}

// hookedRepo runs optional hooks after storage reads and commits
type hookedRepo struct {
	repository.Character
	afterGet    func()
	afterCommit func()
}

func (r *hookedRepo) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	c, err := r.Character.GetCharacter(ctx, id)
	if r.afterGet != nil {
		r.afterGet()
	}
	return c, err
}

func (r *hookedRepo) BeginCharacterTx(ctx context.Context, characterID string) (repository.CharacterTx, error) {
	tx, err := r.Character.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return &hookedTx{CharacterTx: tx, afterCommit: r.afterCommit}, nil
}

type hookedTx struct {
	repository.CharacterTx
	afterCommit func()
}

func (t *hookedTx) Commit(ctx context.Context) error {
	err := t.CharacterTx.Commit(ctx)
	if t.afterCommit != nil {
		t.afterCommit()
	}
	return err
}

// failingRepo makes one transactional write fail with err
type failingRepo struct {
	repository.Character
	failOn string
	err    error
}

func (r *failingRepo) BeginCharacterTx(ctx context.Context, characterID string) (repository.CharacterTx, error) {
	tx, err := r.Character.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return &failingTx{CharacterTx: tx, failOn: r.failOn, err: r.err}, nil
}

type failingTx struct {
	repository.CharacterTx
	failOn string
	err    error
}

func (t *failingTx) UpdateBoss(ctx context.Context, b *domain.UserBoss) error {
	if t.failOn == "UpdateBoss" {
		return t.err
	}
	return t.CharacterTx.UpdateBoss(ctx, b)
}

func (t *failingTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	if t.failOn == "UpdateCharacter" {
		return t.err
	}
	return t.CharacterTx.UpdateCharacter(ctx, c)
}

func (t *failingTx) Commit(ctx context.Context) error {
	if t.failOn == "Commit" {
		_ = t.CharacterTx.Rollback(ctx)
		return t.err
	}
	return t.CharacterTx.Commit(ctx)
}
