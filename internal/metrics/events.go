package metrics

import (
	"context"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.SpinCompleted,
		event.JackpotHit,
		event.AutoplayStarted,
		event.AutoplayStopped,
		event.BonusClaimed,
		event.AchievementUnlocked,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinCompleted:
		var p domain.SpinCompletedPayload
		if p, err = event.DecodePayload[domain.SpinCompletedPayload](evt.Payload); err == nil {
			source := SourceManual
			if p.Autoplay {
				source = SourceAutoplay
			}
			SpinsTotal.WithLabelValues(string(p.Kind), source).Inc()
			AmountWagered.Add(float64(p.Bet))
			AmountPaid.Add(float64(p.Payout))
		}

	case event.JackpotHit:
		JackpotHits.Inc()

	case event.AutoplayStarted:
		AutoplayActive.Inc()

	case event.AutoplayStopped:
		var p domain.AutoplayStoppedPayload
		if p, err = event.DecodePayload[domain.AutoplayStoppedPayload](evt.Payload); err == nil {
			AutoplayActive.Dec()
			AutoplayStopped.WithLabelValues(string(p.Reason)).Inc()
		}

	case event.BonusClaimed:
		var p domain.BonusClaimedPayload
		if p, err = event.DecodePayload[domain.BonusClaimedPayload](evt.Payload); err == nil {
			DailyBonusesClaimed.Inc()
			DailyBonusAmountPaid.Add(float64(p.Amount))
		}

	case event.AchievementUnlocked:
		var p domain.AchievementUnlockedPayload
		if p, err = event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload); err == nil {
			AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()
			AchievementRewardsPaid.Add(float64(p.Reward))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
