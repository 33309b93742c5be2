package postgres

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

func TestLedgerRepository_Lifecycle(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)
	user := uniqueUser(t)

	bal, err := repo.Open(ctx, user, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(100), bal)

	_, err = repo.Open(ctx, user, 50)
	assert.ErrorIs(t, err, domain.ErrAccountExists)

	bal, err = repo.Debit(ctx, user, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(70), bal)

	bal, err = repo.Credit(ctx, user, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(75), bal)

	bal, err = repo.Debit(ctx, user, 76)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.Money(75), bal)

	bal, err = repo.Balance(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(75), bal)
}

func TestLedgerRepository_UnknownAccount(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)

	_, err := repo.Balance(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = repo.Debit(ctx, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = repo.Credit(ctx, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLedgerRepository_TransactionRollsBackDebit(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)
	tx, err := NewTransactor(pool)
	require.NoError(t, err)
	user := uniqueUser(t)

	_, err = repo.Open(ctx, user, 100)
	require.NoError(t, err)

	boom := errors.New("credit failed")
	err = tx.Do(ctx, func(ctx context.Context) error {
		if _, err := repo.Debit(ctx, user, 40); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	bal, err := repo.Balance(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(100), bal)
}

func TestLedgerRepository_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)
	user := uniqueUser(t)

	_, err := repo.Open(ctx, user, 100)
	require.NoError(t, err)

	var ok, insufficient atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Debit(ctx, user, 10)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), ok.Load())
	assert.Equal(t, int32(15), insufficient.Load())
	bal, err := repo.Balance(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, bal)
}
