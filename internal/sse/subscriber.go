package sse

import (
	"context"
	"fmt"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a subscriber broadcasting to hub
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to the game events the stream carries
func (s *Subscriber) Register(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, s.handleSpinCompleted)
	bus.Subscribe(event.JackpotHit, s.handleJackpotHit)
	bus.Subscribe(event.AutoplayStarted, s.handleAutoplayStarted)
	bus.Subscribe(event.AutoplayStopped, s.handleAutoplayStopped)
	bus.Subscribe(event.AchievementUnlocked, s.handleAchievementUnlocked)
}

func (s *Subscriber) handleSpinCompleted(ctx context.Context, evt event.Event) error {
	p, err := decode[domain.SpinCompletedPayload](ctx, evt)
	if err != nil {
		return err
	}
	if !p.Kind.IsWin() {
		return nil
	}
	s.broadcast(ctx, EventTypeWin, p.UserID, WinPayload{
		UserID:     p.UserID,
		SpinID:     p.SpinID,
		Bet:        p.Bet,
		Payout:     p.Payout,
		Kind:       p.Kind,
		Symbols:    p.Symbols,
		Streak:     p.ConsecutiveWins,
		Multiplier: p.StreakMultiplier,
		Autoplay:   p.Autoplay,
	})
	return nil
}

func (s *Subscriber) handleJackpotHit(ctx context.Context, evt event.Event) error {
	p, err := decode[domain.JackpotHitPayload](ctx, evt)
	if err != nil {
		return err
	}
	s.broadcast(ctx, EventTypeJackpotHit, p.UserID, JackpotPayload{
		UserID:  p.UserID,
		SpinID:  p.SpinID,
		Amount:  p.Amount,
		ResetTo: p.ResetTo,
	})
	return nil
}

func (s *Subscriber) handleAutoplayStarted(ctx context.Context, evt event.Event) error {
	p, err := decode[domain.AutoplayStartedPayload](ctx, evt)
	if err != nil {
		return err
	}
	s.broadcast(ctx, EventTypeAutoplayStarted, p.UserID, AutoplayPayload{
		UserID:     p.UserID,
		SessionID:  p.SessionID,
		Strategy:   p.Strategy,
		TotalSpins: p.TotalSpins,
	})
	return nil
}

func (s *Subscriber) handleAutoplayStopped(ctx context.Context, evt event.Event) error {
	p, err := decode[domain.AutoplayStoppedPayload](ctx, evt)
	if err != nil {
		return err
	}
	s.broadcast(ctx, EventTypeAutoplayStopped, p.UserID, AutoplayPayload{
		UserID:      p.UserID,
		SessionID:   p.SessionID,
		Reason:      p.Reason,
		SpinsPlayed: p.SpinsPlayed,
		Net:         p.TotalWon - p.TotalLost,
	})
	return nil
}

func (s *Subscriber) handleAchievementUnlocked(ctx context.Context, evt event.Event) error {
	p, err := decode[domain.AchievementUnlockedPayload](ctx, evt)
	if err != nil {
		return err
	}
	s.broadcast(ctx, EventTypeAchievement, p.UserID, AchievementPayload{
		UserID:        p.UserID,
		AchievementID: p.AchievementID,
		Title:         p.Title,
		Reward:        p.Reward,
	})
	return nil
}

func (s *Subscriber) broadcast(ctx context.Context, eventType, userID string, payload interface{}) {
	s.hub.Broadcast(eventType, payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", eventType, "user_id", userID)
}

func decode[T any](ctx context.Context, evt event.Event) (T, error) {
	p, err := event.DecodePayload[T](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return p, fmt.Errorf("decode %s: %w", evt.Type, err)
	}
	return p, nil
}
