package bonus

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
	"github.com/osse101/RewardReels_Go/internal/ledger"
)

var weekTable = []domain.Money{10, 15, 20, 25, 30, 40, 50}

type fixture struct {
	svc   *service
	store Store
	led   *ledger.MemoryLedger
	pub   *recordingPublisher
	clock time.Time
}

func newFixture(t *testing.T, store Store, loc *time.Location) *fixture {
	t.Helper()
	led := ledger.NewMemoryLedger()
	_, err := led.Open(context.Background(), "alice", 0)
	require.NoError(t, err)

	pub := &recordingPublisher{}
	s, err := NewService(weekTable, loc, store, led, led, pub)
	require.NoError(t, err)

	f := &fixture{svc: s.(*service), store: store, led: led, pub: pub}
	f.clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) advanceDays(n int) {
	f.clock = f.clock.AddDate(0, 0, n)
}

func TestNextStreak(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		prevDay    time.Time
		today      time.Time
		prevStreak int
		want       int
	}{
		{"first claim", time.Time{}, day(5), 0, 1},
		{"consecutive day", day(4), day(5), 3, 4},
		{"cycle wraps after day 7", day(4), day(5), 7, 1},
		{"gap resets", day(2), day(5), 5, 1},
		{"month boundary", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.prevDay, tt.today, tt.prevStreak, CycleDays))
		})
	}
}

func TestClaim_WeeklyCycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, NewMemoryStore(), time.UTC)

	var total domain.Money
	for i := 0; i < 8; i++ {
		res, err := f.svc.Claim(ctx, "alice")
		require.NoError(t, err)
		wantStreak := i%7 + 1
		assert.Equal(t, wantStreak, res.Streak)
		assert.Equal(t, weekTable[wantStreak-1], res.Amount)
		total += res.Amount
		assert.Equal(t, total, res.BalanceAfter)
		f.advanceDays(1)
	}
	assert.Equal(t, 8, f.pub.count())
}

func TestClaim_SameDayRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, NewMemoryStore(), time.UTC)

	_, err := f.svc.Claim(ctx, "alice")
	require.NoError(t, err)

	f.clock = f.clock.Add(11 * time.Hour)
	_, err = f.svc.Claim(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrBonusAlreadyClaimed)

	bal, err := f.led.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Money(10), bal)
	assert.Equal(t, 1, f.pub.count())
}

func TestClaim_GapResetsStreak(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, NewMemoryStore(), time.UTC)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Claim(ctx, "alice")
		require.NoError(t, err)
		f.advanceDays(1)
	}
	f.advanceDays(1)

	res, err := f.svc.Claim(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, domain.Money(10), res.Amount)
}

func TestClaim_UsesConfiguredTimezone(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("UTC-5", -5*60*60)
	f := newFixture(t, NewMemoryStore(), loc)

	// 23:00 local on Mar 1, then 01:00 local on Mar 2 two hours later
	f.clock = time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)
	_, err := f.svc.Claim(ctx, "alice")
	require.NoError(t, err)

	f.clock = f.clock.Add(2 * time.Hour)
	res, err := f.svc.Claim(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak)
}

func TestClaim_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	f := newFixture(t, store, time.UTC)

	_, err := f.svc.Claim(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	streak, err := store.GetLoginStreak(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, streak, "failed claim leaves the streak untouched")
}

func TestClaim_StoreFailureRollsBackCredit(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("GetLastLoginDate", mock.Anything, "alice").Return(time.Time{}, nil)
	store.On("GetLoginStreak", mock.Anything, "alice").Return(0, nil)
	store.On("SetLoginStreak", mock.Anything, "alice", 1).Return(errors.New("disk full"))
	f := newFixture(t, store, time.UTC)

	_, err := f.svc.Claim(ctx, "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToWriteStreak)

	bal, err := f.led.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, bal)
	assert.Zero(t, f.pub.count())
	store.AssertExpectations(t)
}

func TestClaim_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, NewMemoryStore(), time.UTC)

	_, err := f.svc.Claim(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, f.pub.events, 1)
	payload, err := event.DecodePayload[domain.BonusClaimedPayload](f.pub.events[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.UserID)
	assert.Equal(t, 1, payload.Streak)
}

func TestNewService_Validation(t *testing.T) {
	led := ledger.NewMemoryLedger()

	_, err := NewService(nil, time.UTC, NewMemoryStore(), led, led, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = NewService([]domain.Money{10, 0}, time.UTC, NewMemoryStore(), led, led, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestClaim_EmptyUser(t *testing.T) {
	f := newFixture(t, NewMemoryStore(), time.UTC)
	_, err := f.svc.Claim(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
