// Package autoplay runs sequences of spins under a betting strategy and stop conditions.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/slots"
)

// ErrControllerClosed is returned by Start after Shutdown
var ErrControllerClosed = errors.New("autoplay controller is shut down")

// Spinner resolves one spin
type Spinner interface {
	Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error)
}

// BalanceReader reads a balance without mutating it
type BalanceReader interface {
	Balance(ctx context.Context, userID string) (domain.Money, error)
}

// Limits bounds session requests
type Limits struct {
	MinBet       domain.Money
	MaxBet       domain.Money
	DefaultSpins int
	MaxSpins     int
}

// run is one session's mutable state, guarded by Controller.mu
type run struct {
	session       domain.AutoplaySession
	strategy      Strategy
	stopRequested bool
	timer         *time.Timer
	ctx           context.Context
	done          chan struct{}
}

// Controller owns every user's autoplay session. Cycles of one session run
// strictly one after another on timer goroutines.
type Controller struct {
	spinner   Spinner
	balances  BalanceReader
	publisher slots.Publisher
	limits    Limits
	cadence   time.Duration
	now       func() time.Time

	mu     sync.Mutex
	runs   map[string]*run // userID -> latest session
	closed bool
	wg     sync.WaitGroup
}

// NewController creates an autoplay controller
func NewController(spinner Spinner, balances BalanceReader, publisher slots.Publisher, limits Limits, cadence time.Duration) *Controller {
	if cadence < 0 {
		cadence = DefaultCadence
	}
	return &Controller{
		spinner:   spinner,
		balances:  balances,
		publisher: publisher,
		limits:    limits,
		cadence:   cadence,
		now:       time.Now,
		runs:      make(map[string]*run),
	}
}

func (c *Controller) validate(cfg *domain.AutoplayConfig) error {
	if cfg.TotalSpins == 0 {
		cfg.TotalSpins = c.limits.DefaultSpins
	}
	if cfg.TotalSpins <= 0 || (c.limits.MaxSpins > 0 && cfg.TotalSpins > c.limits.MaxSpins) {
		return fmt.Errorf("%w: total spins must be between 1 and %d", domain.ErrInvalidInput, c.limits.MaxSpins)
	}
	if cfg.BaseBet < c.limits.MinBet || cfg.BaseBet <= 0 || (c.limits.MaxBet > 0 && cfg.BaseBet > c.limits.MaxBet) {
		return fmt.Errorf("%w: base bet %d outside [%d, %d]", domain.ErrInvalidBet, cfg.BaseBet, c.limits.MinBet, c.limits.MaxBet)
	}
	if cfg.MaxBet == 0 || (c.limits.MaxBet > 0 && cfg.MaxBet > c.limits.MaxBet) {
		cfg.MaxBet = c.limits.MaxBet
	}
	if cfg.MaxBet > 0 && cfg.MaxBet < cfg.BaseBet {
		return fmt.Errorf("%w: max bet %d below base bet %d", domain.ErrInvalidBet, cfg.MaxBet, cfg.BaseBet)
	}
	return nil
}

// Start begins a session for the user. The first cycle runs immediately.
func (c *Controller) Start(ctx context.Context, userID string, cfg domain.AutoplayConfig) (*domain.AutoplaySession, error) {
	if err := c.validate(&cfg); err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(cfg.Strategy, cfg.BaseBet)
	if err != nil {
		return nil, err
	}
	normalized, _ := normalizeStrategy(cfg.Strategy)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrControllerClosed
	}
	if existing, ok := c.runs[userID]; ok && existing.session.IsActive() {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: session %s", domain.ErrSessionAlreadyActive, existing.session.ID)
	}

	r := &run{
		session: domain.AutoplaySession{
			ID:             uuid.NewString(),
			UserID:         userID,
			Status:         domain.AutoplayRunning,
			RemainingSpins: cfg.TotalSpins,
			TotalSpins:     cfg.TotalSpins,
			BaseBet:        cfg.BaseBet,
			CurrentBet:     cfg.BaseBet,
			MaxBet:         cfg.MaxBet,
			Strategy:       normalized,
			StopConditions: cfg.StopConditions,
			StartedAt:      c.now(),
		},
		strategy: strategy,
		done:     make(chan struct{}),
	}
	r.ctx = logger.WithRequestID(slots.WithAutoplay(context.WithoutCancel(ctx)), r.session.ID)
	c.runs[userID] = r
	c.scheduleLocked(userID, r, 0)
	snapshot := r.session
	c.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		"user_id", userID,
		"session_id", snapshot.ID,
		"spins", snapshot.TotalSpins,
		"strategy", snapshot.Strategy.Kind)
	c.publisher.PublishWithRetry(ctx, event.NewAutoplayStartedEvent(&snapshot))
	return &snapshot, nil
}

// Stop halts the user's session. A pending cycle is cancelled outright; a
// cycle already resolving commits first and the session then stops.
func (c *Controller) Stop(ctx context.Context, userID string) (*domain.AutoplaySession, error) {
	c.mu.Lock()
	r, ok := c.runs[userID]
	if !ok || !r.session.IsActive() {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: user %s", domain.ErrSessionNotFound, userID)
	}

	logger.FromContext(ctx).Info(LogMsgStopRequested, "user_id", userID, "session_id", r.session.ID)
	r.stopRequested = true
	r.session.Status = domain.AutoplayStopping

	var stopped *domain.AutoplaySession
	if r.timer != nil && r.timer.Stop() {
		r.timer = nil
		snap := c.finishLocked(r, domain.StopReasonManual, nil)
		stopped = &snap
	}
	snapshot := r.session
	c.mu.Unlock()

	if stopped != nil {
		c.announceStopped(r.ctx, stopped)
	}
	return &snapshot, nil
}

// State returns the user's current or most recent session. A user who never
// started autoplay gets an idle session.
func (c *Controller) State(userID string) domain.AutoplaySession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.runs[userID]; ok {
		return r.session
	}
	return domain.AutoplaySession{UserID: userID, Status: domain.AutoplayIdle}
}

// Wait blocks until the user's current session has stopped
func (c *Controller) Wait(ctx context.Context, userID string) (domain.AutoplaySession, error) {
	c.mu.Lock()
	r, ok := c.runs[userID]
	c.mu.Unlock()
	if !ok {
		return domain.AutoplaySession{}, fmt.Errorf("%w: user %s", domain.ErrSessionNotFound, userID)
	}

	select {
	case <-r.done:
		return c.State(userID), nil
	case <-ctx.Done():
		return domain.AutoplaySession{}, ctx.Err()
	}
}

// scheduleLocked arms the timer for the next cycle. Caller holds c.mu.
func (c *Controller) scheduleLocked(userID string, r *run, delay time.Duration) {
	r.timer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		if c.runs[userID] != r || r.session.Status == domain.AutoplayStopped {
			c.mu.Unlock()
			return
		}
		r.timer = nil
		if c.closed {
			snap := c.finishLocked(r, domain.StopReasonManual, nil)
			c.mu.Unlock()
			c.announceStopped(r.ctx, &snap)
			return
		}
		c.wg.Add(1)
		c.mu.Unlock()

		defer c.wg.Done()
		c.cycle(userID, r)
	})
}

// cycle runs one spin and decides whether the session continues
func (c *Controller) cycle(userID string, r *run) {
	ctx := r.ctx
	log := logger.FromContext(ctx)

	c.mu.Lock()
	if r.stopRequested {
		snap := c.finishLocked(r, domain.StopReasonManual, nil)
		c.mu.Unlock()
		c.announceStopped(ctx, &snap)
		return
	}
	bet := r.session.CurrentBet
	c.mu.Unlock()

	balance, err := c.balances.Balance(ctx, userID)
	if err != nil {
		c.stop(ctx, r, domain.StopReasonError, err)
		return
	}
	if bet < c.limits.MinBet || balance < bet {
		c.stop(ctx, r, domain.StopReasonInsufficientFunds, nil)
		return
	}

	res, err := c.spinner.Spin(ctx, userID, bet)
	switch {
	case errors.Is(err, domain.ErrConcurrentSpin):
		log.Info(LogMsgCycleSkipped, "user_id", userID)
		c.mu.Lock()
		if r.stopRequested || c.closed {
			snap := c.finishLocked(r, domain.StopReasonManual, nil)
			c.mu.Unlock()
			c.announceStopped(ctx, &snap)
			return
		}
		c.scheduleLocked(userID, r, c.cadence)
		c.mu.Unlock()
		return
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.stop(ctx, r, domain.StopReasonInsufficientFunds, nil)
		return
	case err != nil:
		log.Error(LogMsgCycleFailed, "user_id", userID, "error", err)
		c.stop(ctx, r, domain.StopReasonError, err)
		return
	}

	c.mu.Lock()
	s := &r.session
	s.SpinsPlayed++
	s.RemainingSpins--
	s.LastSpin = res
	if net := res.Net(); net > 0 {
		s.TotalWon += net
	} else {
		s.TotalLost -= net
	}

	reason := checkStopConditions(s, res)
	if reason == domain.StopReasonNone {
		next, halt := r.strategy.Next(res.IsWin, bet)
		if halt {
			reason = domain.StopReasonStrategyHalt
		} else {
			s.CurrentBet = c.clampBet(next, s.MaxBet, res.BalanceAfter)
		}
	}
	if reason == domain.StopReasonNone && (r.stopRequested || c.closed) {
		reason = domain.StopReasonManual
	}

	if reason != domain.StopReasonNone {
		snap := c.finishLocked(r, reason, nil)
		c.mu.Unlock()
		c.announceStopped(ctx, &snap)
		return
	}

	c.scheduleLocked(userID, r, c.cadence)
	c.mu.Unlock()
}

// checkStopConditions evaluates stop conditions in priority order after a committed spin
func checkStopConditions(s *domain.AutoplaySession, res *domain.SpinResult) domain.StopReason {
	sc := s.StopConditions
	net := s.TotalWon - s.TotalLost
	switch {
	case sc.SingleWinAmount != nil && res.Payout >= *sc.SingleWinAmount:
		return domain.StopReasonSingleWin
	case sc.TotalWinAmount != nil && s.TotalWon >= *sc.TotalWinAmount:
		return domain.StopReasonTotalWin
	case sc.TotalLossAmount != nil && s.TotalLost >= *sc.TotalLossAmount:
		return domain.StopReasonTotalLoss
	case sc.BalanceIncrease != nil && net >= *sc.BalanceIncrease:
		return domain.StopReasonBalanceIncrease
	case sc.BalanceDecrease != nil && -net >= *sc.BalanceDecrease:
		return domain.StopReasonBalanceDecrease
	case sc.BalanceFloor != nil && res.BalanceAfter <= *sc.BalanceFloor:
		return domain.StopReasonLowBalance
	case sc.StopOnJackpot && res.JackpotHit:
		return domain.StopReasonJackpot
	case s.RemainingSpins <= 0:
		return domain.StopReasonCompleted
	}
	return domain.StopReasonNone
}

// clampBet keeps a strategy's bet within [MinBet, min(maxBet, balance)]
func (c *Controller) clampBet(bet, maxBet, balance domain.Money) domain.Money {
	upper := balance
	if maxBet > 0 && maxBet < upper {
		upper = maxBet
	}
	if bet > upper {
		bet = upper
	}
	if bet < c.limits.MinBet {
		bet = c.limits.MinBet
	}
	return bet
}

func (c *Controller) stop(ctx context.Context, r *run, reason domain.StopReason, cause error) {
	c.mu.Lock()
	snap := c.finishLocked(r, reason, cause)
	c.mu.Unlock()
	c.announceStopped(ctx, &snap)
}

// finishLocked moves the session to Stopped. Caller holds c.mu.
func (c *Controller) finishLocked(r *run, reason domain.StopReason, cause error) domain.AutoplaySession {
	if r.session.Status == domain.AutoplayStopped {
		return r.session
	}
	now := c.now()
	r.session.Status = domain.AutoplayStopped
	r.session.StopReason = reason
	r.session.StoppedAt = &now
	if cause != nil {
		r.session.LastError = cause.Error()
	}
	close(r.done)
	return r.session
}

func (c *Controller) announceStopped(ctx context.Context, s *domain.AutoplaySession) {
	logger.FromContext(ctx).Info(LogMsgSessionStopped,
		"user_id", s.UserID,
		"session_id", s.ID,
		"reason", s.StopReason,
		"spins_played", s.SpinsPlayed,
		"total_won", s.TotalWon,
		"total_lost", s.TotalLost)
	c.publisher.PublishWithRetry(ctx, event.NewAutoplayStoppedEvent(s))
}

// Shutdown cancels pending cycles and waits for in-flight ones to commit.
// Sessions with a cancelled cycle end with reason manual.
func (c *Controller) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	c.mu.Lock()
	c.closed = true
	var stopped []domain.AutoplaySession
	for userID, r := range c.runs {
		if r.timer != nil && r.timer.Stop() {
			r.timer = nil
			log.Info(LogMsgCancelledSession, "user_id", userID, "session_id", r.session.ID)
			stopped = append(stopped, c.finishLocked(r, domain.StopReasonManual, nil))
		}
	}
	c.mu.Unlock()

	for i := range stopped {
		c.announceStopped(ctx, &stopped[i])
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
