package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// LedgerRepository implements ledger.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Open inserts a new account
func (r *LedgerRepository) Open(ctx context.Context, userID string, initial domain.Money) (domain.Money, error) {
	if initial < 0 {
		return 0, fmt.Errorf("%w: initial balance must not be negative", domain.ErrInvalidInput)
	}

	query, args, err := psql.Insert(tableAccounts).
		Columns(colUserID, colBalance).
		Values(userID, int64(initial)).
		Suffix("RETURNING " + colBalance).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var balance int64
	if err := conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrAccountExists, userID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}
	return domain.Money(balance), nil
}

// Balance returns the current balance
func (r *LedgerRepository) Balance(ctx context.Context, userID string) (domain.Money, error) {
	query, args, err := psql.Select(colBalance).
		From(tableAccounts).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var balance int64
	if err := conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return domain.Money(balance), nil
}

// Debit subtracts amount only if the balance covers it. The guard is part of the
// UPDATE so two concurrent debits can never overdraw the account.
func (r *LedgerRepository) Debit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative debit", domain.ErrInvalidInput)
	}

	query, args, err := psql.Update(tableAccounts).
		Set(colBalance, sq.Expr(colBalance+" - ?", int64(amount))).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.GtOrEq{colBalance: int64(amount)}).
		Suffix("RETURNING " + colBalance).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var balance int64
	err = conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&balance)
	if err == nil {
		return domain.Money(balance), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDebit, err)
	}

	current, err := r.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return current, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, current, amount)
}

// Credit adds amount to the balance
func (r *LedgerRepository) Credit(ctx context.Context, userID string, amount domain.Money) (domain.Money, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative credit", domain.ErrInvalidInput)
	}

	query, args, err := psql.Update(tableAccounts).
		Set(colBalance, sq.Expr(colBalance+" + ?", int64(amount))).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colUserID: userID}).
		Suffix("RETURNING " + colBalance).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var balance int64
	if err := conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCredit, err)
	}
	return domain.Money(balance), nil
}
