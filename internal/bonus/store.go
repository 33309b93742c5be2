package bonus

import (
	"context"
	"sync"
	"time"
)

// Store persists the per-user login streak.
// Days are civil dates at UTC midnight; the zero time means the user never claimed.
type Store interface {
	GetLastLoginDate(ctx context.Context, userID string) (time.Time, error)
	SetLastLoginDate(ctx context.Context, userID string, day time.Time) error
	GetLoginStreak(ctx context.Context, userID string) (int, error)
	SetLoginStreak(ctx context.Context, userID string, streak int) error
}

type loginState struct {
	lastDay time.Time
	streak  int
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]loginState
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]loginState)}
}

// GetLastLoginDate implements Store
func (s *MemoryStore) GetLastLoginDate(_ context.Context, userID string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[userID].lastDay, nil
}

// SetLastLoginDate implements Store
func (s *MemoryStore) SetLastLoginDate(_ context.Context, userID string, day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.users[userID]
	st.lastDay = day
	s.users[userID] = st
	return nil
}

// GetLoginStreak implements Store
func (s *MemoryStore) GetLoginStreak(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[userID].streak, nil
}

// SetLoginStreak implements Store
func (s *MemoryStore) SetLoginStreak(_ context.Context, userID string, streak int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.users[userID]
	st.streak = streak
	s.users[userID] = st
	return nil
}
