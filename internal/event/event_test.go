package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(SpinCompleted, func(ctx context.Context, evt Event) error {
		got = append(got, evt)
		return nil
	})
	bus.Subscribe(SpinCompleted, func(ctx context.Context, evt Event) error {
		got = append(got, evt)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: SpinCompleted, Payload: "p"}))
	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: JackpotHit}))

	assert.Len(t, got, 2, "both handlers run, unrelated types are ignored")
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	called := false
	bus.Subscribe(BonusClaimed, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(BonusClaimed, func(ctx context.Context, evt Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: BonusClaimed})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, called, "later handlers still run after an error")
}

func TestNewSpinCompletedEvent(t *testing.T) {
	now := time.Unix(1700000000, 0)
	result := &domain.SpinResult{
		ID:     "spin-1",
		UserID: "u1",
		Bet:    10,
		Payout: 15,
		Outcome: domain.SpinOutcome{
			Kind: domain.MatchPair,
			Symbols: [domain.ReelCount]domain.Symbol{
				{Key: "LEMON"}, {Key: "LEMON"}, {Key: "STAR"},
			},
		},
		StreakMultiplier: 1,
		ConsecutiveWins:  1,
		ResolvedAt:       now,
	}

	evt := NewSpinCompletedEvent(result, true)

	assert.Equal(t, SpinCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	payload, err := DecodePayload[domain.SpinCompletedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"LEMON", "LEMON", "STAR"}, payload.Symbols)
	assert.Equal(t, domain.Money(15), payload.Payout)
	assert.True(t, payload.Autoplay)
	assert.Equal(t, now.Unix(), payload.Timestamp)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u9", "streak": 3, "amount": 20}

	payload, err := DecodePayload[domain.BonusClaimedPayload](raw)

	require.NoError(t, err)
	assert.Equal(t, "u9", payload.UserID)
	assert.Equal(t, 3, payload.Streak)
	assert.Equal(t, domain.Money(20), payload.Amount)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
