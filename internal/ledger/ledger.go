// Package ledger owns player balances. Debit and Credit are the only mutators.
package ledger

import (
	"context"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// Ledger is the balance account contract consumed by the game core
type Ledger interface {
	// Open creates an account with an initial balance; ErrAccountExists if present
	Open(ctx context.Context, userID string, initial domain.Money) (domain.Money, error)
	Balance(ctx context.Context, userID string) (domain.Money, error)
	// Debit atomically checks and subtracts; ErrInsufficientFunds leaves the balance unchanged
	Debit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error)
	Credit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error)
}

// Transactor runs fn so that every ledger mutation inside it commits or rolls back together.
// Nested calls join the outer transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
