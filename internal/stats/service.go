// Package stats aggregates spin results into game statistics and return-to-player.
package stats

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Service defines the interface for stats operations
type Service interface {
	RecordSpin(ctx context.Context, spin domain.SpinCompletedPayload)
	GetGlobalStats(ctx context.Context) domain.GameStats
	GetUserStats(ctx context.Context, userID string) domain.GameStats
	Reset(ctx context.Context)
}

// tally is the running aggregate behind a GameStats view
type tally struct {
	stats     domain.GameStats
	winAmount domain.Money
}

func newTally(now time.Time) *tally {
	return &tally{stats: domain.GameStats{Since: now}}
}

func (t *tally) add(spin domain.SpinCompletedPayload) {
	s := &t.stats
	s.TotalSpins++
	s.TotalBets += spin.Bet
	s.TotalPayout += spin.Payout

	if spin.Kind.IsWin() {
		s.Wins++
		s.CurrentWinStreak++
		if s.CurrentWinStreak > s.MaxWinStreak {
			s.MaxWinStreak = s.CurrentWinStreak
		}
		t.winAmount += spin.Payout
		if spin.Payout > s.BiggestWin {
			s.BiggestWin = spin.Payout
		}
	} else {
		s.Losses++
		s.CurrentWinStreak = 0
	}
	if spin.JackpotHit {
		s.JackpotsHit++
	}
}

func (t *tally) view() domain.GameStats {
	s := t.stats
	if s.Wins > 0 {
		s.AverageWin = float64(t.winAmount) / float64(s.Wins)
	}
	if s.TotalBets > 0 {
		s.RTP = float64(s.TotalPayout) / float64(s.TotalBets) * 100
	}
	return s
}

type service struct {
	mu     sync.RWMutex
	global *tally
	users  map[string]*tally
	now    func() time.Time
}

// NewService creates a new stats service
func NewService() Service {
	s := &service{now: time.Now}
	s.resetLocked()
	return s
}

func (s *service) resetLocked() {
	s.global = newTally(s.now())
	s.users = make(map[string]*tally)
}

// RecordSpin folds one resolved spin into the global and per-user aggregates
func (s *service) RecordSpin(_ context.Context, spin domain.SpinCompletedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global.add(spin)
	u, ok := s.users[spin.UserID]
	if !ok {
		u = newTally(s.now())
		s.users[spin.UserID] = u
	}
	u.add(spin)
}

// GetGlobalStats returns statistics over every player
func (s *service) GetGlobalStats(_ context.Context) domain.GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.global.view()
}

// GetUserStats returns one player's statistics; an unknown user gets zero values
func (s *service) GetUserStats(_ context.Context, userID string) domain.GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return u.view()
	}
	return domain.GameStats{Since: s.global.stats.Since}
}

// Reset clears all statistics
func (s *service) Reset(ctx context.Context) {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgStatsReset)
}
