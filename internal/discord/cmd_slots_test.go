package discord

import (
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/handler"
)

var (
	testCherry = domain.Symbol{Key: "CHERRY", Display: "🍒", PayoutMultiplier: 8}
	testSeven  = domain.Symbol{Key: "SEVEN", Display: "7️⃣", PayoutMultiplier: 50, IsJackpot: true}
	testJoker  = domain.Symbol{Key: "JOKER", Display: "🃏", PayoutMultiplier: 3, IsWildcard: true}
)

func intOption(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v),
	}
}

func openAccountHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusCreated, handler.BalanceResponse{Balance: 1000})
}

func TestSpinCommand_Win(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, h := SpinCommand()

	ctx.Mux.HandleFunc("POST /api/v1/accounts", openAccountHandler)
	ctx.Mux.HandleFunc("POST /api/v1/spin", func(w http.ResponseWriter, r *http.Request) {
		var req handler.SpinRequest
		require.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, domain.Money(100), req.Bet)
		WriteJSON(w, http.StatusOK, domain.SpinResult{
			ID:               "spin-1",
			Bet:              100,
			Payout:           1600,
			IsWin:            true,
			Outcome:          domain.SpinOutcome{Symbols: [domain.ReelCount]domain.Symbol{testCherry, testJoker, testCherry}, Kind: domain.MatchTriple},
			StreakMultiplier: 2,
			ConsecutiveWins:  3,
			BalanceAfter:     2500,
			Message:          "Three of a kind! You won 1,600.",
		})
	})

	h(ctx.Session, NewCommandInteraction(cmd.Name, intOption(OptBet, 100)), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed, "Should send an embed response")
	assert.Contains(t, embed.Title, "Winner")
	assert.Equal(t, ColorWin, embed.Color)
	assert.Equal(t, "Three of a kind! You won 1,600.", embed.Description)
	assert.Equal(t, "🍒 | 🃏 | 🍒", embed.Fields[0].Value)
	assert.Equal(t, "1,600 credits", embed.Fields[2].Value)
	assert.Equal(t, "3 wins (x2.0)", embed.Fields[4].Value)
	assert.Contains(t, embed.Footer.Text, "Tester")
}

func TestSpinCommand_Jackpot(t *testing.T) {
	result := &domain.SpinResult{
		Bet:           10,
		Payout:        25500,
		IsWin:         true,
		JackpotHit:    true,
		JackpotAmount: 25000,
		Outcome:       domain.SpinOutcome{Symbols: [domain.ReelCount]domain.Symbol{testSeven, testSeven, testSeven}, Kind: domain.MatchJackpot},
	}

	embed := buildSpinEmbed(result, "Tester")
	assert.Contains(t, embed.Title, "JACKPOT")
	assert.Equal(t, ColorJackpot, embed.Color)
	last := embed.Fields[len(embed.Fields)-1]
	assert.Equal(t, "Jackpot", last.Name)
	assert.Equal(t, "25,000 credits", last.Value)
}

func TestSpinCommand_InsufficientFunds(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, h := SpinCommand()

	ctx.Mux.HandleFunc("POST /api/v1/accounts", openAccountHandler)
	ctx.Mux.HandleFunc("POST /api/v1/spin", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusPaymentRequired, handler.ErrorResponse{Error: handler.ErrMsgNotEnoughMoneyError})
	})

	h(ctx.Session, NewCommandInteraction(cmd.Name, intOption(OptBet, 5000)), ctx.APIClient)

	assert.Nil(t, ctx.LastEmbed())
	assert.Equal(t, MsgInsufficientFunds, ctx.LastContent())
}

func TestSpinCommand_AccountServiceDown(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, h := SpinCommand()

	ctx.Mux.HandleFunc("POST /api/v1/accounts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	h(ctx.Session, NewCommandInteraction(cmd.Name, intOption(OptBet, 10)), ctx.APIClient)

	assert.Equal(t, MsgServerUnavailable, ctx.LastContent())
}

func TestJackpotCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, h := JackpotCommand()
	hit := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	ctx.Mux.HandleFunc("GET /api/v1/jackpot", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, domain.JackpotSnapshot{Current: 1234567, Base: 5000, HitCount: 4, LastHitAt: &hit})
	})

	h(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "1,234,567 credits")
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "4", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[2].Value, "<t:")
}

func TestPaytableCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, h := PaytableCommand()

	ctx.Mux.HandleFunc("GET /api/v1/paytable", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, domain.Paytable{
			Symbols:        []domain.Symbol{testSeven, testCherry, testJoker},
			PairMultiplier: 1.5,
			WildcardBonus:  0.5,
			StreakTiers:    []domain.StreakTier{{MinStreak: 3, Multiplier: 1.5}},
			MinBet:         10,
			MaxBet:         10000,
		})
	})

	h(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "7️⃣ x3 → **50.0x** + jackpot")
	assert.Contains(t, embed.Description, "🃏 x3 → **3.0x** (wild)")
	assert.Contains(t, embed.Description, "Any pair → **1.5x**")
	assert.Equal(t, "10 credits – 10,000 credits", embed.Fields[0].Value)
	assert.Equal(t, "3 wins → x1.5", embed.Fields[1].Value)
}

func TestPingCommand(t *testing.T) {
	t.Run("reports jackpot when the API is up", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, h := PingCommand()
		ctx.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		ctx.Mux.HandleFunc("GET /api/v1/jackpot", func(w http.ResponseWriter, _ *http.Request) {
			WriteJSON(w, http.StatusOK, domain.JackpotSnapshot{Current: 12500, Base: 5000})
		})

		h(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

		got := ctx.LastContent()
		assert.Contains(t, got, MsgPingUp)
		assert.Contains(t, got, "12,500 credits")
	})

	t.Run("API down", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, h := PingCommand()
		ctx.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		h(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

		assert.Equal(t, MsgPingAPIDown, ctx.LastContent())
	})
}
