package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/bonus"
	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/jackpot"
)

func TestLoginStreakRepository_RoundTrip(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLoginStreakRepository(pool)
	user := uniqueUser(t)

	day, err := repo.GetLastLoginDate(ctx, user)
	require.NoError(t, err)
	assert.True(t, day.IsZero())
	streak, err := repo.GetLoginStreak(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, streak)

	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLoginStreak(ctx, user, 4))
	require.NoError(t, repo.SetLastLoginDate(ctx, user, want))

	day, err = repo.GetLastLoginDate(ctx, user)
	require.NoError(t, err)
	assert.True(t, want.Equal(day), "got %v", day)
	streak, err = repo.GetLoginStreak(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 4, streak)
}

func TestBonusClaim_AgainstPostgres(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(pool)
	tx, err := NewTransactor(pool)
	require.NoError(t, err)
	user := uniqueUser(t)

	_, err = ledgerRepo.Open(ctx, user, 0)
	require.NoError(t, err)

	svc, err := bonus.NewService([]domain.Money{10, 15, 20, 25, 30, 40, 50}, time.UTC,
		NewLoginStreakRepository(pool), ledgerRepo, tx, nil)
	require.NoError(t, err)

	res, err := svc.Claim(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, domain.Money(10), res.BalanceAfter)

	_, err = svc.Claim(ctx, user)
	assert.ErrorIs(t, err, domain.ErrBonusAlreadyClaimed)

	bal, err := ledgerRepo.Balance(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(10), bal)
}

func TestJackpotRepository_SaveAndRestore(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewJackpotRepository(pool)
	tableID := uniqueUser(t)

	snap, err := repo.Load(ctx, tableID)
	require.NoError(t, err)
	assert.Nil(t, snap)

	hitAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	saved := domain.JackpotSnapshot{
		TableID:          tableID,
		Current:          7342,
		Base:             5000,
		Max:              1000000,
		AccrualPerSecond: 1,
		ContributionRate: 0.01,
		HitCount:         3,
		LastHitAt:        &hitAt,
		UpdatedAt:        hitAt.Add(time.Minute),
	}
	require.NoError(t, repo.Save(ctx, saved))
	saved.Current = 7400
	require.NoError(t, repo.Save(ctx, saved), "second save updates in place")

	acc, err := jackpot.NewAccumulator(jackpot.Config{
		TableID:          tableID,
		Base:             5000,
		Max:              1000000,
		AccrualPerSecond: 1,
		ContributionRate: 0.01,
	})
	require.NoError(t, err)
	defer acc.Stop()

	require.NoError(t, jackpot.Restore(ctx, acc, repo))

	got, err := acc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(7400), got.Current)
	assert.Equal(t, int64(3), got.HitCount)
	require.NotNil(t, got.LastHitAt)
	assert.True(t, hitAt.Equal(*got.LastHitAt))
}

func TestAchievementRepository_RoundTrip(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewAchievementRepository(pool)
	user := uniqueUser(t)

	c, err := repo.GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, c)

	want := domain.AchievementCounters{Spins: 12, Wins: 5, Jackpots: 1, BestStreak: 3, BiggestBet: 50, BiggestPayout: 2500}
	require.NoError(t, repo.SaveCounters(ctx, user, want))
	want.Spins = 13
	require.NoError(t, repo.SaveCounters(ctx, user, want), "second save updates in place")
	c, err = repo.GetCounters(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, want, c)

	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ok, err := repo.Unlock(ctx, user, "first_win", at)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Unlock(ctx, user, "first_win", at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "second unlock is a no-op")

	unlocked, err := repo.Unlocked(ctx, user)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.True(t, at.Equal(unlocked["first_win"]))
}

func TestAchievements_AgainstPostgres(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(pool)
	tx, err := NewTransactor(pool)
	require.NoError(t, err)
	user := uniqueUser(t)

	_, err = ledgerRepo.Open(ctx, user, 100)
	require.NoError(t, err)

	svc, err := achievements.NewService([]domain.Achievement{
		{ID: "first_win", Kind: domain.AchievementWins, Requirement: 1, Reward: 25},
	}, NewAchievementRepository(pool), ledgerRepo, tx, nil)
	require.NoError(t, err)

	spin := domain.SpinCompletedPayload{UserID: user, Bet: 10, Payout: 20, Kind: domain.MatchPair}
	got, err := svc.RecordSpin(ctx, spin)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.RecordSpin(ctx, spin)
	require.NoError(t, err)
	assert.Empty(t, got)

	bal, err := ledgerRepo.Balance(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(125), bal)

	progress, err := svc.Progress(ctx, user)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.True(t, progress[0].Completed)
}
