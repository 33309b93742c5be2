package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// MemoryLedger keeps balances in process memory. It implements both Ledger and Transactor.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]domain.Money
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[string]domain.Money)}
}

type journalKey struct{}

// journal records compensating operations for mutations made inside Do
type journal struct {
	undo []func()
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

// Do runs fn and reverts every Debit and Credit it made if fn returns an error
func (l *MemoryLedger) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalFrom(ctx) != nil {
		return fn(ctx)
	}

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		l.mu.Lock()
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i]()
		}
		l.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgTransactionRolled, "operations", len(j.undo), "error", err)
		return err
	}
	return nil
}

// Open implements Ledger
func (l *MemoryLedger) Open(ctx context.Context, userID string, initial domain.Money) (domain.Money, error) {
	if initial < 0 {
		return 0, fmt.Errorf("%w: initial balance must not be negative", domain.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[userID]; ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountExists, userID)
	}
	l.balances[userID] = initial
	logger.FromContext(ctx).Info(LogMsgAccountOpened, "user_id", userID, "balance", initial)
	return initial, nil
}

// Balance implements Ledger
func (l *MemoryLedger) Balance(_ context.Context, userID string) (domain.Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
	}
	return bal, nil
}

// Debit implements Ledger
func (l *MemoryLedger) Debit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative debit", domain.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
	}
	if bal < amount {
		return bal, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, bal, amount)
	}

	l.balances[userID] = bal - amount
	l.record(ctx, userID, amount)
	return bal - amount, nil
}

// Credit implements Ledger
func (l *MemoryLedger) Credit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative credit", domain.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
	}

	l.balances[userID] = bal + amount
	l.record(ctx, userID, -amount)
	return bal + amount, nil
}

// record registers the inverse of a mutation. Caller holds l.mu.
func (l *MemoryLedger) record(ctx context.Context, userID string, delta domain.Money) {
	j := journalFrom(ctx)
	if j == nil {
		return
	}
	j.undo = append(j.undo, func() {
		l.balances[userID] += delta
	})
}
