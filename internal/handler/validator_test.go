package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

func TestValidator_UserID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"plain", "alice", false},
		{"platform prefixed", "discord:123456789", false},
		{"max length", string(make64('a')), false},
		{"empty", "", true},
		{"too long", string(make64('a')) + "a", true},
		{"space", "al ice", true},
		{"newline", "alice\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUserID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func make64(c byte) []byte {
	b := make([]byte, 64)
	for i := range b {
		b[i] = c
	}
	return b
}

func TestValidator_SpinRequest(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(SpinRequest{UserID: "alice", Bet: 10}))

	err := v.ValidateStruct(SpinRequest{UserID: "", Bet: 0})
	require.Error(t, err)
	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["userid"])
	assert.Contains(t, fields, "bet")
}

func TestValidator_AutoplayRequest(t *testing.T) {
	v := GetValidator()

	req := StartAutoplayRequest{
		UserID:     "alice",
		TotalSpins: 10,
		BaseBet:    5,
		Strategy:   domain.StrategyConfig{Kind: "doubling"},
	}
	err := v.ValidateStruct(req)
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err)["kind"], "Must be one of")

	req.Strategy.Kind = domain.StrategyMartingale
	assert.NoError(t, v.ValidateStruct(req))
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
