package jackpot

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Store persists pool snapshots across restarts
type Store interface {
	// Load returns nil, nil when nothing was saved for the table
	Load(ctx context.Context, tableID string) (*domain.JackpotSnapshot, error)
	Save(ctx context.Context, snap domain.JackpotSnapshot) error
}

// MemoryStore is a Store for the in-memory deployment and tests
type MemoryStore struct {
	mu    sync.Mutex
	snaps map[string]domain.JackpotSnapshot
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]domain.JackpotSnapshot)}
}

// Load implements Store
func (s *MemoryStore) Load(_ context.Context, tableID string) (*domain.JackpotSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[tableID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Save implements Store
func (s *MemoryStore) Save(_ context.Context, snap domain.JackpotSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.TableID] = snap
	return nil
}

// Restore seeds the accumulator from the store if a snapshot exists
func Restore(ctx context.Context, acc *Accumulator, store Store) error {
	snap, err := store.Load(ctx, acc.TableID())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoad, err)
	}
	if snap == nil {
		return nil
	}
	if err := acc.Seed(ctx, *snap); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgJackpotSeeded, "table_id", snap.TableID, "current", snap.Current)
	return nil
}
