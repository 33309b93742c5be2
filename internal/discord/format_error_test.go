package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RewardReels_Go/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Insufficient Funds", "API error: " + handler.ErrMsgNotEnoughMoneyError, MsgInsufficientFunds},
		{"Bonus Claimed", "API error: " + handler.ErrMsgBonusAlreadyClaimedError, MsgBonusClaimed},
		{"Maintenance", "API error: " + handler.ErrMsgMaintenanceError, MsgMaintenance},
		{"Concurrent Spin", "API error: " + handler.ErrMsgConcurrentSpinError, MsgSpinInProgress},
		{"Autoplay Active", "API error: " + handler.ErrMsgAutoplayActiveError, MsgAutoplayActive},
		{"Autoplay Missing", "API error: " + handler.ErrMsgAutoplayNotFoundError, MsgAutoplayNotRunning},
		{"Invalid Bet", "API error: " + handler.ErrMsgInvalidBetError, MsgInvalidBet},
		{"Server Down", "max retries exceeded: dial tcp: connection refused", MsgServerUnavailable},
		{"Generic Error", "some random error", "❌ some random error"},
		{"Generic API Error", "API error: Invalid request", "❌ Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12,500 credits", formatMoney(12500))
	assert.Equal(t, "+1,000 credits", formatSigned(1000))
	assert.Equal(t, "-40 credits", formatSigned(-40))
}
