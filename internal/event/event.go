package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	SpinCompleted   Type = domain.EventTypeSpinCompleted
	JackpotHit      Type = domain.EventTypeJackpotHit
	AutoplayStarted Type = domain.EventTypeAutoplayStarted
	AutoplayStopped Type = domain.EventTypeAutoplayStopped
	BonusClaimed    Type = domain.EventTypeBonusClaimed

	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
)

// NewSpinCompletedEvent creates a spin completed event with type-safe payload
func NewSpinCompletedEvent(result *domain.SpinResult, autoplay bool) Event {
	symbols := make([]string, 0, len(result.Outcome.Symbols))
	for _, s := range result.Outcome.Symbols {
		symbols = append(symbols, s.Key)
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: domain.SpinCompletedPayload{
			SpinID:           result.ID,
			UserID:           result.UserID,
			Bet:              result.Bet,
			Payout:           result.Payout,
			Kind:             result.Outcome.Kind,
			Symbols:          symbols,
			StreakMultiplier: result.StreakMultiplier,
			ConsecutiveWins:  result.ConsecutiveWins,
			JackpotHit:       result.JackpotHit,
			Autoplay:         autoplay,
			Timestamp:        result.ResolvedAt.Unix(),
		},
	}
}

// NewJackpotHitEvent creates a jackpot hit event
func NewJackpotHitEvent(spinID, userID string, amount, resetTo domain.Money) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JackpotHit,
		Payload: domain.JackpotHitPayload{
			SpinID:    spinID,
			UserID:    userID,
			Amount:    amount,
			ResetTo:   resetTo,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewAutoplayStartedEvent creates an autoplay started event
func NewAutoplayStartedEvent(s *domain.AutoplaySession) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AutoplayStarted,
		Payload: domain.AutoplayStartedPayload{
			SessionID:  s.ID,
			UserID:     s.UserID,
			TotalSpins: s.TotalSpins,
			BaseBet:    s.BaseBet,
			Strategy:   s.Strategy.Kind,
			Timestamp:  s.StartedAt.Unix(),
		},
	}
}

// NewAutoplayStoppedEvent creates an autoplay stopped event
func NewAutoplayStoppedEvent(s *domain.AutoplaySession) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AutoplayStopped,
		Payload: domain.AutoplayStoppedPayload{
			SessionID:   s.ID,
			UserID:      s.UserID,
			Reason:      s.StopReason,
			SpinsPlayed: s.SpinsPlayed,
			TotalWon:    s.TotalWon,
			TotalLost:   s.TotalLost,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewBonusClaimedEvent creates a daily bonus claimed event
func NewBonusClaimedEvent(res *domain.DailyBonusResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BonusClaimed,
		Payload: domain.BonusClaimedPayload{
			UserID:    res.UserID,
			Streak:    res.Streak,
			Amount:    res.Amount,
			Timestamp: res.ClaimedAt.Unix(),
		},
	}
}

// NewAchievementUnlockedEvent creates an achievement unlocked event
func NewAchievementUnlockedEvent(userID string, a domain.Achievement, balanceAfter domain.Money, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			UserID:        userID,
			AchievementID: a.ID,
			Title:         a.Title,
			Reward:        a.Reward,
			BalanceAfter:  balanceAfter,
			Timestamp:     at.Unix(),
		},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process MemoryBus payloads are already the correct struct; replayed
// dead-letter events arrive as generic maps.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
