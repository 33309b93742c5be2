// Package bonus credits the daily login bonus on a seven day cycle.
package bonus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/RewardReels_Go/internal/concurrency"
	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/ledger"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Publisher delivers bonus events
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Service defines the daily bonus operations
type Service interface {
	Claim(ctx context.Context, userID string) (*domain.DailyBonusResult, error)
	Table() []domain.Money
}

type service struct {
	table     []domain.Money
	loc       *time.Location
	store     Store
	ledger    ledger.Ledger
	tx        ledger.Transactor
	locks     *concurrency.LockManager
	publisher Publisher
	now       func() time.Time
}

// NewService creates a daily bonus service. table holds the amount for day 1..len(table);
// calendar days are evaluated in loc.
func NewService(table []domain.Money, loc *time.Location, store Store, l ledger.Ledger, tx ledger.Transactor, publisher Publisher) (Service, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty daily bonus table", domain.ErrConfiguration)
	}
	for i, amt := range table {
		if amt <= 0 {
			return nil, fmt.Errorf("%w: daily bonus day %d must be positive", domain.ErrConfiguration, i+1)
		}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		table:     append([]domain.Money(nil), table...),
		loc:       loc,
		store:     store,
		ledger:    l,
		tx:        tx,
		locks:     concurrency.NewLockManager(),
		publisher: publisher,
		now:       time.Now,
	}, nil
}

// civilDay maps an instant to its calendar date in loc, stored as UTC midnight
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextStreak returns the streak after a claim on today given the previous claim day.
// A consecutive day advances the cycle, anything else restarts it at 1.
func NextStreak(prevDay, today time.Time, prevStreak, cycle int) int {
	if !prevDay.IsZero() && prevDay.AddDate(0, 0, 1).Equal(today) {
		return prevStreak%cycle + 1
	}
	return 1
}

func (s *service) Table() []domain.Money {
	return append([]domain.Money(nil), s.table...)
}

func (s *service) Claim(ctx context.Context, userID string) (*domain.DailyBonusResult, error) {
	log := logger.FromContext(ctx)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	today := civilDay(now, s.loc)
	res := &domain.DailyBonusResult{UserID: userID, ClaimedAt: now}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		last, err := s.store.GetLastLoginDate(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToReadStreak, err)
		}
		if last.Equal(today) {
			return domain.ErrBonusAlreadyClaimed
		}
		prev, err := s.store.GetLoginStreak(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToReadStreak, err)
		}

		res.Streak = NextStreak(last, today, prev, len(s.table))
		res.Amount = s.table[res.Streak-1]

		balance, err := s.ledger.Credit(ctx, userID, res.Amount)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
		res.BalanceAfter = balance

		if err := s.store.SetLoginStreak(ctx, userID, res.Streak); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToWriteStreak, err)
		}
		if err := s.store.SetLastLoginDate(ctx, userID, today); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToWriteStreak, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrBonusAlreadyClaimed) {
			log.Debug(LogMsgBonusAlreadyClaimed, "user_id", userID)
		}
		return nil, err
	}

	log.Info(LogMsgBonusClaimed, "user_id", userID, "streak", res.Streak, "amount", res.Amount)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewBonusClaimedEvent(res))
	}
	return res, nil
}
