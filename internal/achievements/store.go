package achievements

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// Store persists achievement counters and unlocks per player
type Store interface {
	GetCounters(ctx context.Context, userID string) (domain.AchievementCounters, error)
	SaveCounters(ctx context.Context, userID string, c domain.AchievementCounters) error
	// Unlocked returns unlock times keyed by achievement id
	Unlocked(ctx context.Context, userID string) (map[string]time.Time, error)
	// Unlock records an unlock; false means it was already recorded
	Unlock(ctx context.Context, userID, achievementID string, at time.Time) (bool, error)
}

type playerRecord struct {
	counters domain.AchievementCounters
	unlocked map[string]time.Time
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]*playerRecord
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[string]*playerRecord)}
}

func (s *MemoryStore) player(userID string) *playerRecord {
	p, ok := s.players[userID]
	if !ok {
		p = &playerRecord{unlocked: make(map[string]time.Time)}
		s.players[userID] = p
	}
	return p
}

// GetCounters implements Store
func (s *MemoryStore) GetCounters(_ context.Context, userID string) (domain.AchievementCounters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.players[userID]; ok {
		return p.counters, nil
	}
	return domain.AchievementCounters{}, nil
}

// SaveCounters implements Store
func (s *MemoryStore) SaveCounters(_ context.Context, userID string, c domain.AchievementCounters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player(userID).counters = c
	return nil
}

// Unlocked implements Store
func (s *MemoryStore) Unlocked(_ context.Context, userID string) (map[string]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]time.Time)
	if p, ok := s.players[userID]; ok {
		for id, at := range p.unlocked {
			out[id] = at
		}
	}
	return out, nil
}

// Unlock implements Store
func (s *MemoryStore) Unlock(_ context.Context, userID, achievementID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.player(userID)
	if _, done := p.unlocked[achievementID]; done {
		return false, nil
	}
	p.unlocked[achievementID] = at
	return true, nil
}
