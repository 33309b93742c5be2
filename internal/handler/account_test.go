package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/history"
	"github.com/osse101/RewardReels_Go/internal/ledger"
	"github.com/osse101/RewardReels_Go/internal/stats"
)

func TestHandleOpenAccount(t *testing.T) {
	l := ledger.NewMemoryLedger()
	handler := HandleOpenAccount(l, 100)

	w := httptest.NewRecorder()
	handler(w, postJSON(t, "/api/v1/accounts", UserRequest{UserID: "alice"}))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.Money(100), decodeBody[BalanceResponse](t, w).Balance)

	w = httptest.NewRecorder()
	handler(w, postJSON(t, "/api/v1/accounts", UserRequest{UserID: "alice"}))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleGetBalance(t *testing.T) {
	l := ledger.NewMemoryLedger()
	_, err := l.Open(context.Background(), "alice", 40)
	require.NoError(t, err)
	handler := HandleGetBalance(l)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/balance?user_id=alice", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Money(40), decodeBody[BalanceResponse](t, w).Balance)

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/balance?user_id=ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgAccountNotFoundError)
}

func TestHandleClaimDailyBonus(t *testing.T) {
	t.Run("claimed", func(t *testing.T) {
		svc := &MockBonusService{}
		svc.On("Claim", mock.Anything, "alice").Return(&domain.DailyBonusResult{
			UserID: "alice", Streak: 3, Amount: 20, BalanceAfter: 120,
		}, nil)

		w := httptest.NewRecorder()
		HandleClaimDailyBonus(svc)(w, postJSON(t, "/api/v1/bonus/daily", UserRequest{UserID: "alice"}))

		require.Equal(t, http.StatusOK, w.Code)
		res := decodeBody[domain.DailyBonusResult](t, w)
		assert.Equal(t, 3, res.Streak)
		assert.Equal(t, domain.Money(20), res.Amount)
	})

	t.Run("already claimed", func(t *testing.T) {
		svc := &MockBonusService{}
		svc.On("Claim", mock.Anything, "alice").Return(nil, domain.ErrBonusAlreadyClaimed)

		w := httptest.NewRecorder()
		HandleClaimDailyBonus(svc)(w, postJSON(t, "/api/v1/bonus/daily", UserRequest{UserID: "alice"}))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgBonusAlreadyClaimedError)
	})

	t.Run("table", func(t *testing.T) {
		svc := &MockBonusService{}
		svc.On("Table").Return([]domain.Money{10, 15, 20})

		w := httptest.NewRecorder()
		HandleGetBonusTable(svc)(w, httptest.NewRequest(http.MethodGet, "/api/v1/bonus/table", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []domain.Money{10, 15, 20}, decodeBody[BonusTableResponse](t, w).Days)
	})
}

func TestHandleGetHistory(t *testing.T) {
	svc := history.NewService(10, 100, time.Hour)
	ctx := context.Background()
	svc.RecordSpin(ctx, domain.SpinCompletedPayload{SpinID: "s1", UserID: "alice", Bet: 5, Payout: 10, Kind: domain.MatchTriple})
	svc.RecordSpin(ctx, domain.SpinCompletedPayload{SpinID: "s2", UserID: "alice", Bet: 5, Payout: 0, Kind: domain.MatchNone})

	w := httptest.NewRecorder()
	HandleGetHistory(svc)(w, httptest.NewRequest(http.MethodGet, "/api/v1/history?user_id=alice", nil))

	require.Equal(t, http.StatusOK, w.Code)
	res := decodeBody[HistoryResponse](t, w)
	require.Len(t, res.Wins, 1)
	assert.Equal(t, "s1", res.Wins[0].ID)

	w = httptest.NewRecorder()
	HandleGetHistory(svc)(w, httptest.NewRequest(http.MethodGet, "/api/v1/history?user_id=nobody", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"nobody","wins":[]}`, w.Body.String())
}

func TestHandleStats(t *testing.T) {
	svc := stats.NewService()
	ctx := context.Background()
	svc.RecordSpin(ctx, domain.SpinCompletedPayload{UserID: "alice", Bet: 10, Payout: 30, Kind: domain.MatchTriple})
	svc.RecordSpin(ctx, domain.SpinCompletedPayload{UserID: "bob", Bet: 10, Payout: 0, Kind: domain.MatchNone})

	t.Run("global", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleGetStats(svc)(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

		require.Equal(t, http.StatusOK, w.Code)
		gs := decodeBody[domain.GameStats](t, w)
		assert.Equal(t, int64(2), gs.TotalSpins)
		assert.InDelta(t, 150.0, gs.RTP, 0.001)
	})

	t.Run("per user", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleGetStats(svc)(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats?user_id=bob", nil))

		require.Equal(t, http.StatusOK, w.Code)
		gs := decodeBody[domain.GameStats](t, w)
		assert.Equal(t, int64(1), gs.Losses)
		assert.Equal(t, int64(0), gs.Wins)
	})

	t.Run("reset", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleResetStats(svc)(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/stats/reset", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(0), svc.GetGlobalStats(ctx).TotalSpins)
	})
}
