package slots

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
)

// MockLedger implements ledger.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Open(ctx context.Context, userID string, initial domain.Money) (domain.Money, error) {
	args := m.Called(ctx, userID, initial)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockLedger) Balance(ctx context.Context, userID string) (domain.Money, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockLedger) Debit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockLedger) Credit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.Money), args.Error(1)
}

// MockJackpotPool implements JackpotPool for testing
type MockJackpotPool struct {
	mock.Mock
}

func (m *MockJackpotPool) Claim(ctx context.Context) (domain.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockJackpotPool) Restore(ctx context.Context, amount domain.Money) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *MockJackpotPool) Contribute(ctx context.Context, bet domain.Money) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockJackpotPool) Snapshot(ctx context.Context) (domain.JackpotSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.JackpotSnapshot), args.Error(1)
}

// passthroughTx runs fn without any transactional behaviour
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func (p *recordingPublisher) ofType(t event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
