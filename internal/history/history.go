// Package history keeps each player's most recent wins.
package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Service records wins and serves them newest first
type Service interface {
	RecordSpin(ctx context.Context, spin domain.SpinCompletedPayload)
	Recent(ctx context.Context, userID string) []domain.WinRecord
}

// service stores a bounded slice of wins per user in an expiring LRU.
// Users idle longer than the TTL drop out of the cache entirely.
type service struct {
	mu    sync.Mutex
	lru   *expirable.LRU[string, []domain.WinRecord]
	limit int
}

// NewService creates a history keeping limit wins for each of up to maxUsers players
func NewService(limit, maxUsers int, ttl time.Duration) Service {
	if maxUsers <= 0 {
		maxUsers = DefaultMaxUsers
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		lru:   expirable.NewLRU[string, []domain.WinRecord](maxUsers, nil, ttl),
		limit: limit,
	}
}

// RecordSpin prepends a win to the player's history; losses are ignored
func (s *service) RecordSpin(_ context.Context, spin domain.SpinCompletedPayload) {
	if !spin.Kind.IsWin() || s.limit <= 0 {
		return
	}
	rec := domain.WinRecord{
		ID:        spin.SpinID,
		Amount:    spin.Payout,
		Symbols:   spin.Symbols,
		Kind:      spin.Kind,
		IsJackpot: spin.JackpotHit,
		Streak:    spin.ConsecutiveWins,
		Timestamp: time.Unix(spin.Timestamp, 0).UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, _ := s.lru.Get(spin.UserID)
	n := len(prev) + 1
	if n > s.limit {
		n = s.limit
	}
	next := make([]domain.WinRecord, 0, n)
	next = append(next, rec)
	next = append(next, prev[:n-1]...)
	s.lru.Add(spin.UserID, next)
}

// Recent returns a copy of the player's wins, newest first
func (s *service) Recent(_ context.Context, userID string) []domain.WinRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, ok := s.lru.Get(userID)
	if !ok {
		return []domain.WinRecord{}
	}
	out := make([]domain.WinRecord, len(recs))
	copy(out, recs)
	return out
}

// EventHandler feeds spin events into the history
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new history event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes the handler to spin completions
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, h.HandleSpinCompleted)
}

// HandleSpinCompleted records the spin if it paid out
func (h *EventHandler) HandleSpinCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SpinCompletedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToDecodeSpin, "error", err)
		return fmt.Errorf(ErrMsgDecodeSpinFailed, err)
	}
	h.service.RecordSpin(ctx, payload)
	return nil
}
