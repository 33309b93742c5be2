// Package jackpot implements the progressive jackpot pool.
//
// All state lives in a single goroutine; Tick, Contribute, Claim and Restore
// are messages to it, so a hit can never interleave with a tick.
package jackpot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/metrics"
)

// ErrStopped is returned by operations on a stopped accumulator
var ErrStopped = errors.New("jackpot accumulator stopped")

// Config describes one pool
type Config struct {
	TableID          string
	Base             domain.Money
	Max              domain.Money // 0 means uncapped
	AccrualPerSecond float64
	ContributionRate float64
}

type state struct {
	current   decimal.Decimal
	hits      int64
	lastHitAt *time.Time
	updatedAt time.Time
}

// Accumulator owns the pool value
type Accumulator struct {
	cfg     Config
	base    decimal.Decimal
	max     decimal.Decimal
	accrual decimal.Decimal
	rate    decimal.Decimal
	now     func() time.Time

	ops      chan func(*state)
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAccumulator validates cfg and starts the owning goroutine. The pool starts at Base.
func NewAccumulator(cfg Config) (*Accumulator, error) {
	if cfg.TableID == "" {
		cfg.TableID = DefaultTableID
	}
	if cfg.Base < 0 || cfg.AccrualPerSecond < 0 || cfg.ContributionRate < 0 {
		return nil, fmt.Errorf("%w: jackpot values must not be negative", domain.ErrConfiguration)
	}
	if cfg.Max > 0 && cfg.Max <= cfg.Base {
		return nil, fmt.Errorf("%w: jackpot max %d must exceed base %d", domain.ErrConfiguration, cfg.Max, cfg.Base)
	}

	a := &Accumulator{
		cfg:     cfg,
		base:    decimal.NewFromInt(int64(cfg.Base)),
		max:     decimal.NewFromInt(int64(cfg.Max)),
		accrual: decimal.NewFromFloat(cfg.AccrualPerSecond),
		rate:    decimal.NewFromFloat(cfg.ContributionRate),
		now:     time.Now,
		ops:     make(chan func(*state)),
		quit:    make(chan struct{}),
	}

	st := &state{current: a.base, updatedAt: a.now()}
	a.publish(st)

	a.wg.Add(1)
	go a.loop(st)
	return a, nil
}

func (a *Accumulator) loop(st *state) {
	defer a.wg.Done()
	for {
		select {
		case op := <-a.ops:
			op(st)
		case <-a.quit:
			return
		}
	}
}

// exec runs fn on the owning goroutine and waits for it to finish
func (a *Accumulator) exec(ctx context.Context, fn func(*state)) error {
	done := make(chan struct{})
	op := func(st *state) {
		fn(st)
		close(done)
	}

	select {
	case a.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	case <-a.quit:
		return ErrStopped
	}
	<-done
	return nil
}

// add grows the pool and applies the cap. Runs on the owning goroutine.
func (a *Accumulator) add(st *state, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	st.current = st.current.Add(amount)
	a.clamp(st)
	st.updatedAt = a.now()
	a.publish(st)
}

func (a *Accumulator) clamp(st *state) {
	if st.current.LessThan(a.base) {
		st.current = a.base
	}
	if a.cfg.Max > 0 && st.current.GreaterThan(a.max) {
		st.current = a.max
	}
}

func (a *Accumulator) publish(st *state) {
	metrics.JackpotCurrent.WithLabelValues(a.cfg.TableID).Set(st.current.InexactFloat64())
}

// Tick accrues AccrualPerSecond for the elapsed time
func (a *Accumulator) Tick(ctx context.Context, elapsed time.Duration) error {
	if elapsed <= 0 {
		return nil
	}
	amount := a.accrual.Mul(decimal.NewFromFloat(elapsed.Seconds()))
	return a.exec(ctx, func(st *state) { a.add(st, amount) })
}

// Contribute adds the configured share of a resolved bet
func (a *Accumulator) Contribute(ctx context.Context, bet domain.Money) error {
	if bet <= 0 {
		return nil
	}
	amount := decimal.NewFromInt(int64(bet)).Mul(a.rate)
	return a.exec(ctx, func(st *state) { a.add(st, amount) })
}

// Claim returns the whole-unit pool value and resets the pool to Base in one step
func (a *Accumulator) Claim(ctx context.Context) (domain.Money, error) {
	var won domain.Money
	err := a.exec(ctx, func(st *state) {
		won = domain.Money(st.current.Floor().IntPart())
		now := a.now()
		st.current = a.base
		st.hits++
		st.lastHitAt = &now
		st.updatedAt = now
		a.publish(st)
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgJackpotClaimed, "table_id", a.cfg.TableID, "amount", won)
	return won, nil
}

// Restore reverses a Claim whose spin did not commit. Accrual since the claim is kept.
func (a *Accumulator) Restore(ctx context.Context, amount domain.Money) error {
	err := a.exec(ctx, func(st *state) {
		st.current = st.current.Sub(a.base).Add(decimal.NewFromInt(int64(amount)))
		a.clamp(st)
		if st.hits > 0 {
			st.hits--
		}
		st.updatedAt = a.now()
		a.publish(st)
	})
	if err == nil {
		logger.FromContext(ctx).Warn(LogMsgJackpotRestored, "table_id", a.cfg.TableID, "amount", amount)
	}
	return err
}

// Seed replaces the pool state with a persisted snapshot, clamped to the current bounds
func (a *Accumulator) Seed(ctx context.Context, snap domain.JackpotSnapshot) error {
	return a.exec(ctx, func(st *state) {
		st.current = decimal.NewFromInt(int64(snap.Current))
		a.clamp(st)
		st.hits = snap.HitCount
		st.lastHitAt = snap.LastHitAt
		st.updatedAt = a.now()
		a.publish(st)
	})
}

// Snapshot returns the current pool view. Current is truncated to whole units.
func (a *Accumulator) Snapshot(ctx context.Context) (domain.JackpotSnapshot, error) {
	var snap domain.JackpotSnapshot
	err := a.exec(ctx, func(st *state) {
		snap = domain.JackpotSnapshot{
			TableID:          a.cfg.TableID,
			Current:          domain.Money(st.current.Floor().IntPart()),
			Base:             a.cfg.Base,
			Max:              a.cfg.Max,
			AccrualPerSecond: a.cfg.AccrualPerSecond,
			ContributionRate: a.cfg.ContributionRate,
			HitCount:         st.hits,
			LastHitAt:        st.lastHitAt,
			UpdatedAt:        st.updatedAt,
		}
	})
	return snap, err
}

// TableID returns the pool identifier
func (a *Accumulator) TableID() string {
	return a.cfg.TableID
}

// Stop terminates the owning goroutine. Later calls return ErrStopped.
func (a *Accumulator) Stop() {
	a.stopOnce.Do(func() { close(a.quit) })
	a.wg.Wait()
}
