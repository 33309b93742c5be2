package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoginStreakRepository implements bonus.Store for PostgreSQL
type LoginStreakRepository struct {
	db *pgxpool.Pool
}

// NewLoginStreakRepository creates a new LoginStreakRepository
func NewLoginStreakRepository(db *pgxpool.Pool) *LoginStreakRepository {
	return &LoginStreakRepository{db: db}
}

// GetLastLoginDate returns the zero time if the user never claimed
func (r *LoginStreakRepository) GetLastLoginDate(ctx context.Context, userID string) (time.Time, error) {
	var day *time.Time
	if err := r.selectColumn(ctx, userID, colLastLoginDate, &day); err != nil {
		return time.Time{}, err
	}
	if day == nil {
		return time.Time{}, nil
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// GetLoginStreak returns 0 if the user never claimed
func (r *LoginStreakRepository) GetLoginStreak(ctx context.Context, userID string) (int, error) {
	var streak int
	if err := r.selectColumn(ctx, userID, colStreak, &streak); err != nil {
		return 0, err
	}
	return streak, nil
}

// SetLastLoginDate upserts the last claim day
func (r *LoginStreakRepository) SetLastLoginDate(ctx context.Context, userID string, day time.Time) error {
	return r.upsert(ctx, userID, colLastLoginDate, day)
}

// SetLoginStreak upserts the streak counter
func (r *LoginStreakRepository) SetLoginStreak(ctx context.Context, userID string, streak int) error {
	return r.upsert(ctx, userID, colStreak, streak)
}

func (r *LoginStreakRepository) selectColumn(ctx context.Context, userID, column string, dest any) error {
	query, args, err := psql.Select(column).
		From(tableLoginStreaks).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if err := conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(dest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetLoginStreak, err)
	}
	return nil
}

func (r *LoginStreakRepository) upsert(ctx context.Context, userID, column string, value any) error {
	query, args, err := psql.Insert(tableLoginStreaks).
		Columns(colUserID, column).
		Values(userID, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()",
			colUserID, column, column, colUpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := conn(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveLoginStreak, err)
	}
	return nil
}
