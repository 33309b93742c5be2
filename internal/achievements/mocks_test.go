package achievements

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
)

// MockStore implements Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetCounters(ctx context.Context, userID string) (domain.AchievementCounters, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AchievementCounters), args.Error(1)
}

func (m *MockStore) SaveCounters(ctx context.Context, userID string, c domain.AchievementCounters) error {
	args := m.Called(ctx, userID, c)
	return args.Error(0)
}

func (m *MockStore) Unlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func (m *MockStore) Unlock(ctx context.Context, userID, achievementID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, achievementID, at)
	return args.Bool(0), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
