package stats

import (
	"context"
	"fmt"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// EventHandler feeds bus events into the stats service
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, h.HandleSpinCompleted)
}

// HandleSpinCompleted records a resolved spin
func (h *EventHandler) HandleSpinCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SpinCompletedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToDecodeSpin, "error", err)
		return fmt.Errorf(ErrMsgDecodeSpinFailed, err)
	}
	h.service.RecordSpin(ctx, payload)
	return nil
}
