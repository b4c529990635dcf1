package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

func TestCharacterCache_FillAfterInvalidateIsDropped(t *testing.T) {
	cache := newCharacterCache(10, 0)
	c := &domain.Character{ID: "char-1", TotalXP: 10}

	gen := cache.Generation()
	cache.Invalidate("char-2")
	assert.False(t, cache.Fill(c, gen))
	assert.Equal(t, 0, cache.Len())

	assert.True(t, cache.Fill(c, cache.Generation()))
	got, ok := cache.Get("char-1")
	require.True(t, ok)
	assert.Equal(t, int64(10), got.TotalXP)
}

func TestGetCharacter_SlowWriterDoesNotOverwriteNewerState(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	c := env.createCharacter(t, "slowpoke")

	// First writer stalls after its commit has released the character lock
	p := newPause()
	env.svc.repo = &hookedRepo{Character: env.store, afterCommit: p.hit}

	done := make(chan error, 1)
	go func() {
		_, err := env.svc.LogActivity(ctx, c.ID, "pushups", domain.LogOptions{ProofURL: testProof})
		done <- err
	}()
	<-p.reached

	second := env.log(t, c.ID, "pushups", 0)
	close(p.resume)
	require.NoError(t, <-done)

	stored, err := env.store.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	got, err := env.svc.GetCharacter(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, second.Character.TotalXP, stored.TotalXP)
	assert.Equal(t, stored.TotalXP, got.TotalXP)
	assert.Equal(t, domain.BaselineStat+2, got.Stats.Strength)
}

func TestGetCharacter_ReadRacingWriteIsNotCached(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()
	c := env.createCharacter(t, "reader")
	env.svc.Invalidate(c.ID)

	// Reader stalls after loading the pre-write character
	p := newPause()
	env.svc.repo = &hookedRepo{Character: env.store, afterGet: p.hit}

	type result struct {
		c   *domain.Character
		err error
	}
	read := make(chan result, 1)
	go func() {
		got, err := env.svc.GetCharacter(ctx, c.ID)
		read <- result{got, err}
	}()
	<-p.reached

	res := env.log(t, c.ID, "pushups", 0)
	close(p.resume)

	stale := <-read
	require.NoError(t, stale.err)
	assert.Equal(t, int64(0), stale.c.TotalXP, "the read began before the write")

	fresh, err := env.svc.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Character.TotalXP, fresh.TotalXP)
	assert.Equal(t, res.Character.Stats, fresh.Stats)
}
