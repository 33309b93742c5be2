package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/ledger"
)

// BalanceResponse reports a user's balance
type BalanceResponse struct {
	UserID  string       `json:"user_id"`
	Balance domain.Money `json:"balance"`
}

// HandleOpenAccount opens a demo account funded with the starting balance
// @Summary Open account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body UserRequest true "User"
// @Success 201 {object} BalanceResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/accounts [post]
func HandleOpenAccount(l ledger.Ledger, startingBalance domain.Money) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open account"); err != nil {
			return
		}

		balance, err := l.Open(r.Context(), req.UserID, startingBalance)
		if err != nil {
			respondServiceError(w, r, "Open account", err)
			return
		}

		respondJSON(w, http.StatusCreated, BalanceResponse{UserID: req.UserID, Balance: balance})
	}
}

// HandleGetBalance returns a user's balance
// @Summary Balance
// @Tags accounts
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/balance [get]
func HandleGetBalance(l ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		balance, err := l.Balance(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
	}
}
