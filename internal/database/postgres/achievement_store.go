package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// AchievementRepository implements achievements.Store for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// GetCounters returns zero counters for a player with no spins
func (r *AchievementRepository) GetCounters(ctx context.Context, userID string) (domain.AchievementCounters, error) {
	query, args, err := psql.Select(colSpins, colWins, colJackpots, colBestStreak, colBiggestBet, colBiggestPayout).
		From(tableAchievementCounters).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return domain.AchievementCounters{}, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var c domain.AchievementCounters
	err = conn(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&c.Spins, &c.Wins, &c.Jackpots, &c.BestStreak, &c.BiggestBet, &c.BiggestPayout)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AchievementCounters{}, nil
		}
		return domain.AchievementCounters{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetAchievements, err)
	}
	return c, nil
}

// SaveCounters upserts the player's counters
func (r *AchievementRepository) SaveCounters(ctx context.Context, userID string, c domain.AchievementCounters) error {
	query, args, err := psql.Insert(tableAchievementCounters).
		Columns(colUserID, colSpins, colWins, colJackpots, colBestStreak, colBiggestBet, colBiggestPayout).
		Values(userID, c.Spins, c.Wins, c.Jackpots, c.BestStreak, c.BiggestBet, c.BiggestPayout).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s, %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, "+
				"%[5]s = EXCLUDED.%[5]s, %[6]s = EXCLUDED.%[6]s, %[7]s = EXCLUDED.%[7]s, %[8]s = NOW()",
			colUserID, colSpins, colWins, colJackpots, colBestStreak, colBiggestBet, colBiggestPayout, colUpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := conn(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveAchievements, err)
	}
	return nil
}

// Unlocked returns unlock times keyed by achievement id
func (r *AchievementRepository) Unlocked(ctx context.Context, userID string) (map[string]time.Time, error) {
	query, args, err := psql.Select(colAchievementID, colUnlockedAt).
		From(tableAchievementUnlocks).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAchievements, err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var (
			id string
			at time.Time
		)
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAchievements, err)
		}
		out[id] = at.UTC()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAchievements, err)
	}
	return out, nil
}

// Unlock inserts the unlock row; false means the row already existed
func (r *AchievementRepository) Unlock(ctx context.Context, userID, achievementID string, at time.Time) (bool, error) {
	query, args, err := psql.Insert(tableAchievementUnlocks).
		Columns(colUserID, colAchievementID, colUnlockedAt).
		Values(userID, achievementID, at).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, %s) DO NOTHING", colUserID, colAchievementID)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	tag, err := conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUnlock, err)
	}
	return tag.RowsAffected() == 1, nil
}
