package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
)

// MockRepository is a testify mock of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, entry Entry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter Filter) ([]Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_LogsGameEventsFromBus(t *testing.T) {
	repo := NewMemoryRepository(100)
	svc := NewService(repo)
	bus := event.NewMemoryBus()
	svc.Register(bus)
	ctx := context.Background()

	result := &domain.SpinResult{
		ID:      "spin-1",
		UserID:  "alice",
		Bet:     10,
		Payout:  80,
		Outcome: domain.SpinOutcome{Kind: domain.MatchTriple},
	}
	require.NoError(t, bus.Publish(ctx, event.NewSpinCompletedEvent(result, false)))
	require.NoError(t, bus.Publish(ctx, event.NewJackpotHitEvent("spin-2", "bob", 5000, 1000)))

	entries, err := svc.Query(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, string(event.JackpotHit), entries[0].EventType, "newest first")
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, "bob", *entries[0].UserID)

	spin := entries[1]
	assert.Equal(t, string(event.SpinCompleted), spin.EventType)
	assert.Equal(t, "spin-1", spin.Payload["spin_id"])
	assert.EqualValues(t, 80, spin.Payload["payout"])
}

func TestService_QueryFilters(t *testing.T) {
	repo := NewMemoryRepository(100)
	svc := NewService(repo)
	ctx := context.Background()
	alice, bob := "alice", "bob"
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, e := range []Entry{
		{EventType: "spin.completed", UserID: &alice, CreatedAt: base},
		{EventType: "bonus.claimed", UserID: &alice, CreatedAt: base.Add(time.Hour)},
		{EventType: "spin.completed", UserID: &bob, CreatedAt: base.Add(2 * time.Hour)},
	} {
		_, err := repo.Append(ctx, e)
		require.NoError(t, err, i)
	}

	got, err := svc.Query(ctx, Filter{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Query(ctx, Filter{EventType: "spin.completed", Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", *got[0].UserID)

	since := base.Add(30 * time.Minute)
	got, err = svc.Query(ctx, Filter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_AppendFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)
	repo.On("Append", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	err := svc.handleEvent(context.Background(), event.Event{
		Type:    event.BonusClaimed,
		Payload: domain.BonusClaimedPayload{UserID: "alice", Streak: 2, Amount: 200},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextAppend)
	repo.AssertExpectations(t)
}

func TestService_QueryClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	repo.On("List", mock.Anything, Filter{Limit: MaxQueryLimit}).Return([]Entry{}, nil)

	_, err := svc.Query(context.Background(), Filter{Limit: 10 * MaxQueryLimit})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMemoryRepository_EvictsOldest(t *testing.T) {
	repo := NewMemoryRepository(2)
	ctx := context.Background()
	for _, typ := range []string{"a", "b", "c"} {
		_, err := repo.Append(ctx, Entry{EventType: typ})
		require.NoError(t, err)
	}

	got, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].EventType)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "b", got[1].EventType)
}

func TestCleanupJob_Process(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(10)
	svc := &service{repo: repo, now: fixedClock(now)}
	ctx := context.Background()

	_, _ = repo.Append(ctx, Entry{EventType: "old", CreatedAt: now.Add(-48 * time.Hour)})
	_, _ = repo.Append(ctx, Entry{EventType: "new", CreatedAt: now.Add(-time.Hour)})

	require.NoError(t, NewCleanupJob(svc, 24*time.Hour).Process(ctx))

	got, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].EventType)
}

func TestCleanupJob_PropagatesError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))

	err := NewCleanupJob(NewService(repo), time.Hour).Process(context.Background())
	assert.EqualError(t, err, "timeout")
}
