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

// JackpotRepository implements jackpot.Store for PostgreSQL
type JackpotRepository struct {
	db *pgxpool.Pool
}

// NewJackpotRepository creates a new JackpotRepository
func NewJackpotRepository(db *pgxpool.Pool) *JackpotRepository {
	return &JackpotRepository{db: db}
}

// Load returns nil, nil when no snapshot was saved for the table
func (r *JackpotRepository) Load(ctx context.Context, tableID string) (*domain.JackpotSnapshot, error) {
	query, args, err := psql.Select(
		colTableID, colCurrent, colBase, colMax, colAccrualPerSecond,
		colContributionRate, colHitCount, colLastHitAt, colUpdatedAt,
	).
		From(tableJackpotPools).
		Where(sq.Eq{colTableID: tableID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var snap domain.JackpotSnapshot
	var current, base, maxAmount int64
	err = conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&snap.TableID, &current, &base, &maxAmount, &snap.AccrualPerSecond,
		&snap.ContributionRate, &snap.HitCount, &snap.LastHitAt, &snap.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadJackpot, err)
	}
	snap.Current = domain.Money(current)
	snap.Base = domain.Money(base)
	snap.Max = domain.Money(maxAmount)
	return &snap, nil
}

// Save upserts the snapshot
func (r *JackpotRepository) Save(ctx context.Context, snap domain.JackpotSnapshot) error {
	query, args, err := psql.Insert(tableJackpotPools).
		Columns(
			colTableID, colCurrent, colBase, colMax, colAccrualPerSecond,
			colContributionRate, colHitCount, colLastHitAt, colUpdatedAt,
		).
		Values(
			snap.TableID, int64(snap.Current), int64(snap.Base), int64(snap.Max), snap.AccrualPerSecond,
			snap.ContributionRate, snap.HitCount, snap.LastHitAt, snap.UpdatedAt,
		).
		Suffix(`ON CONFLICT (table_id) DO UPDATE SET
			current = EXCLUDED.current,
			base = EXCLUDED.base,
			max = EXCLUDED.max,
			accrual_per_second = EXCLUDED.accrual_per_second,
			contribution_rate = EXCLUDED.contribution_rate,
			hit_count = EXCLUDED.hit_count,
			last_hit_at = EXCLUDED.last_hit_at,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := conn(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveJackpot, err)
	}
	return nil
}
