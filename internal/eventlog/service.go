// Package eventlog keeps an audit trail of game events.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Register subscribes the logger to every game event type
	Register(bus event.Bus)

	// Query returns logged events, newest first
	Query(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Register(bus event.Bus) {
	for _, t := range LoggedEventTypes {
		bus.Subscribe(t, s.handleEvent)
	}
}

// handleEvent flattens the typed payload into JSON fields and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toMap(evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToEncodePayload, "error", err, "type", evt.Type)
		return fmt.Errorf("%s: %w", ErrContextEncodePayload, err)
	}

	entry := Entry{
		EventType: string(evt.Type),
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		entry.UserID = &uid
	}
	if md, ok := evt.Metadata.(map[string]interface{}); ok {
		entry.Metadata = md
	}

	id, err := s.repo.Append(ctx, entry)
	if err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return fmt.Errorf("%s: %w", ErrContextAppend, err)
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "id", id)
	return nil
}

func (s *service) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultQueryLimit
	case filter.Limit > MaxQueryLimit:
		filter.Limit = MaxQueryLimit
	}
	return s.repo.List(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return s.repo.DeleteBefore(ctx, s.now().Add(-retention))
}

func toMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
