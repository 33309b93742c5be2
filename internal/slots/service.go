package slots

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardReels_Go/internal/concurrency"
	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/ledger"
	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/metrics"
	"github.com/osse101/RewardReels_Go/internal/streak"
)

// JackpotPool is the part of the jackpot accumulator a spin needs
type JackpotPool interface {
	Claim(ctx context.Context) (domain.Money, error)
	Restore(ctx context.Context, amount domain.Money) error
	Contribute(ctx context.Context, bet domain.Money) error
	Snapshot(ctx context.Context) (domain.JackpotSnapshot, error)
}

// Publisher delivers domain events
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Service resolves spins
type Service interface {
	Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error)
	Jackpot(ctx context.Context) (domain.JackpotSnapshot, error)
	Paytable() domain.Paytable
	SetMaintenance(ctx context.Context, enabled bool)
	Maintenance() bool
}

// Config holds bet limits and payout tuning.
// A zero PairMultiplier and a nil WildcardBonus fall back to the defaults.
type Config struct {
	MinBet         domain.Money
	MaxBet         domain.Money
	PairMultiplier float64
	WildcardBonus  *float64
	Maintenance    bool
}

type service struct {
	cfg         Config
	wildBonus   float64
	selector    *Selector
	calc        Calculator
	streaks     *streak.Registry
	pool        JackpotPool
	ledger      ledger.Ledger
	tx          ledger.Transactor
	locks       *concurrency.LockManager
	publisher   Publisher
	maintenance atomic.Bool
	now         func() time.Time
}

// NewService creates a new slots service
func NewService(
	cfg Config,
	selector *Selector,
	streaks *streak.Registry,
	pool JackpotPool,
	l ledger.Ledger,
	tx ledger.Transactor,
	locks *concurrency.LockManager,
	publisher Publisher,
) Service {
	if cfg.PairMultiplier == 0 {
		cfg.PairMultiplier = DefaultPairMultiplier
	}
	wildBonus := DefaultWildcardBonus
	if cfg.WildcardBonus != nil {
		wildBonus = *cfg.WildcardBonus
	}

	s := &service{
		cfg:       cfg,
		wildBonus: wildBonus,
		selector:  selector,
		calc:      NewCalculator(cfg.PairMultiplier, wildBonus),
		streaks:   streaks,
		pool:      pool,
		ledger:    l,
		tx:        tx,
		locks:     locks,
		publisher: publisher,
		now:       time.Now,
	}
	s.maintenance.Store(cfg.Maintenance)
	return s
}

type sourceKey struct{}

// WithAutoplay marks spins made with ctx as autoplay cycles
func WithAutoplay(ctx context.Context) context.Context {
	return context.WithValue(ctx, sourceKey{}, metrics.SourceAutoplay)
}

func isAutoplay(ctx context.Context) bool {
	src, _ := ctx.Value(sourceKey{}).(string)
	return src == metrics.SourceAutoplay
}

func (s *service) reject(ctx context.Context, reason string, err error) error {
	metrics.SpinsRejected.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Debug(LogMsgSpinRejected, "reason", reason, "error", err)
	return err
}

// Spin debits the bet, resolves the reels and credits the payout as one unit.
// The outcome is final when Spin returns.
func (s *service) Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	if bet <= 0 || bet < s.cfg.MinBet || (s.cfg.MaxBet > 0 && bet > s.cfg.MaxBet) {
		return nil, s.reject(ctx, RejectReasonInvalidBet,
			fmt.Errorf("%w: %d outside [%d, %d]", domain.ErrInvalidBet, bet, s.cfg.MinBet, s.cfg.MaxBet))
	}
	if s.maintenance.Load() {
		return nil, s.reject(ctx, RejectReasonMaintenance, domain.ErrMaintenance)
	}

	release, ok := s.locks.TryLock(userID)
	if !ok {
		metrics.SpinsRejected.WithLabelValues(RejectReasonConcurrent).Inc()
		log.Warn(LogMsgConcurrentSpinRejected, "user_id", userID)
		return nil, fmt.Errorf("%w: user %s", domain.ErrConcurrentSpin, userID)
	}
	defer release()

	var (
		result  *domain.SpinResult
		claimed domain.Money
		didHit  bool
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		afterDebit, err := s.ledger.Debit(ctx, userID, bet)
		if err != nil {
			return err
		}

		outcome := Evaluate(s.selector.DrawReels())
		won := outcome.Kind.IsWin()
		next := s.streaks.Preview(userID, won)

		var jackpot domain.Money
		if outcome.Kind == domain.MatchJackpot {
			jackpot, err = s.pool.Claim(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrContextFailedToClaim, err)
			}
			claimed, didHit = jackpot, true
		}

		payout, hit := s.calc.Calculate(outcome, bet, next.CurrentMultiplier, jackpot)
		balance := afterDebit
		if payout > 0 {
			balance, err = s.ledger.Credit(ctx, userID, payout)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
			}
		}

		result = &domain.SpinResult{
			ID:               uuid.NewString(),
			UserID:           userID,
			Bet:              bet,
			Payout:           payout,
			Outcome:          outcome,
			IsWin:            won,
			JackpotHit:       hit,
			StreakMultiplier: next.CurrentMultiplier,
			ConsecutiveWins:  next.ConsecutiveWins,
			BalanceBefore:    afterDebit + bet,
			BalanceAfter:     balance,
			ResolvedAt:       s.now(),
		}
		if hit {
			result.JackpotAmount = jackpot
		}
		return nil
	})
	if err != nil {
		if didHit {
			if rerr := s.pool.Restore(context.WithoutCancel(ctx), claimed); rerr != nil {
				log.Error(LogMsgJackpotRestoreFailed, "user_id", userID, "amount", claimed, "error", rerr)
			}
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, s.reject(ctx, RejectReasonInsufficient, err)
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, s.reject(ctx, RejectReasonError, err)
		}
		metrics.SpinsRejected.WithLabelValues(RejectReasonError).Inc()
		return nil, fmt.Errorf("%s: %w", ErrContextSpinFailed, err)
	}

	s.streaks.Commit(userID, result.IsWin)
	// the winning spin leaves the pool at its base
	if !result.JackpotHit {
		if err := s.pool.Contribute(ctx, bet); err != nil {
			log.Warn(LogMsgJackpotContributeFail, "error", err)
		}
	}
	result.Message = FormatMessage(result)

	s.publisher.PublishWithRetry(ctx, event.NewSpinCompletedEvent(result, isAutoplay(ctx)))
	if result.JackpotHit {
		var resetTo domain.Money
		if snap, err := s.pool.Snapshot(ctx); err == nil {
			resetTo = snap.Base
		}
		log.Info(LogMsgJackpotHit, "user_id", userID, "spin_id", result.ID, "amount", result.JackpotAmount)
		s.publisher.PublishWithRetry(ctx, event.NewJackpotHitEvent(result.ID, userID, result.JackpotAmount, resetTo))
	}

	metrics.SpinDuration.Observe(time.Since(start).Seconds())
	log.Debug(LogMsgSpinResolved,
		"user_id", userID,
		"spin_id", result.ID,
		"kind", result.Outcome.Kind,
		"bet", bet,
		"payout", result.Payout,
		"balance", result.BalanceAfter)

	return result, nil
}

// Jackpot returns the current pool
func (s *service) Jackpot(ctx context.Context) (domain.JackpotSnapshot, error) {
	snap, err := s.pool.Snapshot(ctx)
	if err != nil {
		return domain.JackpotSnapshot{}, fmt.Errorf("%s: %w", ErrContextFailedToSnapshot, err)
	}
	return snap, nil
}

// Paytable describes symbols, multipliers and bet limits
func (s *service) Paytable() domain.Paytable {
	return domain.Paytable{
		Symbols:        s.selector.Symbols(),
		PairMultiplier: s.cfg.PairMultiplier,
		WildcardBonus:  s.wildBonus,
		StreakTiers:    s.streaks.Table().Tiers(),
		MinBet:         s.cfg.MinBet,
		MaxBet:         s.cfg.MaxBet,
	}
}

// SetMaintenance toggles rejection of new spins
func (s *service) SetMaintenance(ctx context.Context, enabled bool) {
	s.maintenance.Store(enabled)
	logger.FromContext(ctx).Info(LogMsgMaintenanceChanged, "enabled", enabled)
}

func (s *service) Maintenance() bool {
	return s.maintenance.Load()
}
