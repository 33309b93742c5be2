package autoplay

import (
	"context"
	"sync"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
)

// fakeEngine resolves spins against an in-memory balance with scripted payouts
type fakeEngine struct {
	mu      sync.Mutex
	balance domain.Money
	calls   int
	bets    []domain.Money

	// payout returns the payout for the n-th committed spin (0-based)
	payout func(n int, bet domain.Money) domain.Money
	// fail returns an error for the n-th call (0-based) before any mutation
	fail func(call int) error
	// jackpotAt marks the n-th committed spin as a jackpot hit
	jackpotAt int
	// block, when set, is waited on inside every spin after the mutation
	block chan struct{}
	// entered is signalled when a spin starts
	entered chan struct{}
}

func newFakeEngine(balance domain.Money) *fakeEngine {
	return &fakeEngine{balance: balance, jackpotAt: -1}
}

func (f *fakeEngine) Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error) {
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}

	f.mu.Lock()
	call := f.calls
	f.calls++
	if f.fail != nil {
		if err := f.fail(call); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	}
	if f.balance < bet {
		f.mu.Unlock()
		return nil, domain.ErrInsufficientFunds
	}

	n := len(f.bets)
	var payout domain.Money
	if f.payout != nil {
		payout = f.payout(n, bet)
	}
	before := f.balance
	f.balance = f.balance - bet + payout
	f.bets = append(f.bets, bet)
	res := &domain.SpinResult{
		ID:            "spin",
		UserID:        userID,
		Bet:           bet,
		Payout:        payout,
		IsWin:         payout > 0,
		JackpotHit:    n == f.jackpotAt,
		BalanceBefore: before,
		BalanceAfter:  f.balance,
	}
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return res, nil
}

func (f *fakeEngine) Balance(ctx context.Context, userID string) (domain.Money, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, nil
}

func (f *fakeEngine) placedBets() []domain.Money {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Money(nil), f.bets...)
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// payouts returns a payout func that plays back a fixed list and then loses
func payouts(list ...domain.Money) func(int, domain.Money) domain.Money {
	return func(n int, _ domain.Money) domain.Money {
		if n < len(list) {
			return list[n]
		}
		return 0
	}
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
