// Package achievements tracks lifetime spin milestones and pays a one-time
// reward through the ledger when a player reaches one.
package achievements

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

// Publisher delivers achievement events
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Service defines the achievement operations
type Service interface {
	// RecordSpin updates the player's counters and unlocks whatever the spin completed
	RecordSpin(ctx context.Context, spin domain.SpinCompletedPayload) ([]domain.AchievementProgress, error)
	// Progress lists every catalogue entry with the player's standing, in catalogue order
	Progress(ctx context.Context, userID string) ([]domain.AchievementProgress, error)
	Catalogue() []domain.Achievement
}

var errAlreadyUnlocked = errors.New("achievement already unlocked")

type service struct {
	catalogue []domain.Achievement
	store     Store
	ledger    ledger.Ledger
	tx        ledger.Transactor
	locks     *concurrency.LockManager
	publisher Publisher
	now       func() time.Time
}

// NewService creates an achievement service over catalogue
func NewService(catalogue []domain.Achievement, store Store, l ledger.Ledger, tx ledger.Transactor, publisher Publisher) (Service, error) {
	if err := ValidateCatalogue(catalogue); err != nil {
		return nil, err
	}
	return &service{
		catalogue: append([]domain.Achievement(nil), catalogue...),
		store:     store,
		ledger:    l,
		tx:        tx,
		locks:     concurrency.NewLockManager(),
		publisher: publisher,
		now:       time.Now,
	}, nil
}

func (s *service) Catalogue() []domain.Achievement {
	return append([]domain.Achievement(nil), s.catalogue...)
}

func (s *service) RecordSpin(ctx context.Context, spin domain.SpinCompletedPayload) ([]domain.AchievementProgress, error) {
	log := logger.FromContext(ctx)
	if spin.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	lock := s.locks.GetLock(spin.UserID)
	lock.Lock()
	defer lock.Unlock()

	counters, err := s.store.GetCounters(ctx, spin.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadProgress, err)
	}
	counters = apply(counters, spin)
	if err := s.store.SaveCounters(ctx, spin.UserID, counters); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveProgress, err)
	}

	unlocked, err := s.store.Unlocked(ctx, spin.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadProgress, err)
	}

	var (
		newly []domain.AchievementProgress
		errs  []error
	)
	for _, a := range s.catalogue {
		if _, done := unlocked[a.ID]; done || counters.Value(a.Kind) < a.Requirement {
			continue
		}
		at := s.now().UTC()
		balance, err := s.unlock(ctx, spin.UserID, a, at)
		if errors.Is(err, errAlreadyUnlocked) {
			continue
		}
		if err != nil {
			log.Error(LogMsgUnlockFailed, "user_id", spin.UserID, "achievement", a.ID, "error", err)
			errs = append(errs, err)
			continue
		}

		log.Info(LogMsgAchievementUnlocked, "user_id", spin.UserID, "achievement", a.ID, "reward", a.Reward)
		newly = append(newly, domain.AchievementProgress{
			Achievement: a,
			Progress:    counters.Value(a.Kind),
			Completed:   true,
			UnlockedAt:  &at,
		})
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewAchievementUnlockedEvent(spin.UserID, a, balance, at))
		}
	}
	return newly, errors.Join(errs...)
}

// unlock credits the reward and records the unlock in one transaction.
// A concurrent unlock of the same entry rolls the credit back.
func (s *service) unlock(ctx context.Context, userID string, a domain.Achievement, at time.Time) (domain.Money, error) {
	var balance domain.Money
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		if balance, err = s.ledger.Credit(ctx, userID, a.Reward); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
		inserted, err := s.store.Unlock(ctx, userID, a.ID, at)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToUnlock, err)
		}
		if !inserted {
			return errAlreadyUnlocked
		}
		return nil
	})
	return balance, err
}

func (s *service) Progress(ctx context.Context, userID string) ([]domain.AchievementProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	counters, err := s.store.GetCounters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadProgress, err)
	}
	unlocked, err := s.store.Unlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadProgress, err)
	}

	out := make([]domain.AchievementProgress, 0, len(s.catalogue))
	for _, a := range s.catalogue {
		p := domain.AchievementProgress{Achievement: a, Progress: counters.Value(a.Kind)}
		if p.Progress > a.Requirement {
			p.Progress = a.Requirement
		}
		if at, ok := unlocked[a.ID]; ok {
			p.Completed = true
			p.UnlockedAt = &at
		}
		out = append(out, p)
	}
	return out, nil
}

// EventHandler feeds spin events into the achievement service
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new achievements event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes the handler to spin completions
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, h.HandleSpinCompleted)
}

// HandleSpinCompleted records the spin against the player's achievements.
// Only decode errors are returned; a returned error redelivers the spin to
// every subscriber.
func (h *EventHandler) HandleSpinCompleted(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	payload, err := event.DecodePayload[domain.SpinCompletedPayload](evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToDecodeSpin, "error", err)
		return fmt.Errorf("%s: %w", ErrContextDecodeSpin, err)
	}
	if _, err := h.service.RecordSpin(ctx, payload); err != nil {
		log.Error(LogMsgRecordFailed, "user_id", payload.UserID, "error", err)
	}
	return nil
}
