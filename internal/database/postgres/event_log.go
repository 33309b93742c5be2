package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardReels_Go/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// Append inserts the entry and returns its generated id
func (r *EventLogRepository) Append(ctx context.Context, entry eventlog.Entry) (int64, error) {
	query, args, err := psql.Insert(tableGameEvents).
		Columns(colEventType, colUserID, colPayload, colMetadata, colCreatedAt).
		Values(entry.EventType, entry.UserID, entry.Payload, entry.Metadata, entry.CreatedAt).
		Suffix("RETURNING " + colID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var id int64
	if err := conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return id, nil
}

// List returns matching entries, newest first
func (r *EventLogRepository) List(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	q := psql.Select(colID, colEventType, colUserID, colPayload, colMetadata, colCreatedAt).
		From(tableGameEvents).
		OrderBy(colCreatedAt+" DESC", colID+" DESC")
	if filter.UserID != "" {
		q = q.Where(sq.Eq{colUserID: filter.UserID})
	}
	if filter.EventType != "" {
		q = q.Where(sq.Eq{colEventType: filter.EventType})
	}
	if filter.Since != nil {
		q = q.Where(sq.GtOrEq{colCreatedAt: *filter.Since})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	var out []eventlog.Entry
	for rows.Next() {
		var e eventlog.Entry
		if err := rows.Scan(&e.ID, &e.EventType, &e.UserID, &e.Payload, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return out, nil
}

// DeleteBefore removes entries created before cutoff
func (r *EventLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psql.Delete(tableGameEvents).
		Where(sq.Lt{colCreatedAt: cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	tag, err := conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEvents, err)
	}
	return tag.RowsAffected(), nil
}
