package jackpot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

type failingStore struct{}

func (failingStore) Load(context.Context, string) (*domain.JackpotSnapshot, error) {
	return nil, errors.New("db down")
}

func (failingStore) Save(context.Context, domain.JackpotSnapshot) error {
	return errors.New("db down")
}

func TestTickJob_AccruesElapsedTime(t *testing.T) {
	acc := newTestAccumulator(t, Config{Base: 100, Max: 1000, AccrualPerSecond: 1})

	start := time.Unix(1_700_000_000, 0)
	clock := start
	job := &TickJob{acc: acc, now: func() time.Time { return clock }, last: start}

	clock = start.Add(30 * time.Second)
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, domain.Money(130), current(t, acc))

	// a missed tick is caught up on the next run
	clock = start.Add(90 * time.Second)
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, domain.Money(190), current(t, acc))
}

func TestPersistJob_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	acc := newTestAccumulator(t, Config{TableID: "main", Base: 100, Max: 1000, AccrualPerSecond: 1})
	require.NoError(t, acc.Tick(ctx, 250*time.Second))
	require.NoError(t, NewPersistJob(acc, store).Process(ctx))

	restarted := newTestAccumulator(t, Config{TableID: "main", Base: 100, Max: 1000, AccrualPerSecond: 1})
	require.NoError(t, Restore(ctx, restarted, store))
	assert.Equal(t, domain.Money(350), current(t, restarted))
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store keeps base", func(t *testing.T) {
		acc := newTestAccumulator(t, Config{TableID: "main", Base: 100})
		require.NoError(t, Restore(ctx, acc, NewMemoryStore()))
		assert.Equal(t, domain.Money(100), current(t, acc))
	})

	t.Run("snapshot above new max is clamped", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, domain.JackpotSnapshot{TableID: "main", Current: 9999, HitCount: 4}))

		acc := newTestAccumulator(t, Config{TableID: "main", Base: 100, Max: 500})
		require.NoError(t, Restore(ctx, acc, store))

		snap, err := acc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Money(500), snap.Current)
		assert.Equal(t, int64(4), snap.HitCount)
	})

	t.Run("store error", func(t *testing.T) {
		acc := newTestAccumulator(t, Config{TableID: "main", Base: 100})
		err := Restore(ctx, acc, failingStore{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToLoad)
		assert.Error(t, NewPersistJob(acc, failingStore{}).Process(ctx))
	})
}
