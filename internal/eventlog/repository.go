package eventlog

import (
	"context"
	"time"
)

// Entry is one logged game event
type Entry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	UserID    *string                `json:"user_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Filter narrows a query. Zero fields match everything.
type Filter struct {
	UserID    string
	EventType string
	Since     *time.Time
	Limit     int
}

// Repository defines the interface for event log storage
type Repository interface {
	// Append stores an entry and returns its id
	Append(ctx context.Context, entry Entry) (int64, error)

	// List returns matching entries, newest first
	List(ctx context.Context, filter Filter) ([]Entry, error)

	// DeleteBefore removes entries created before cutoff
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
