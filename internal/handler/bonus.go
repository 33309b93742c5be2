package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/bonus"
	"github.com/osse101/RewardReels_Go/internal/domain"
)

// BonusTableResponse lists the daily bonus amounts for each day of the cycle
type BonusTableResponse struct {
	Days []domain.Money `json:"days"`
}

// HandleClaimDailyBonus credits today's login bonus
// @Summary Claim daily bonus
// @Tags bonus
// @Accept json
// @Produce json
// @Param request body UserRequest true "User"
// @Success 200 {object} domain.DailyBonusResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/bonus/daily [post]
func HandleClaimDailyBonus(svc bonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim daily bonus"); err != nil {
			return
		}

		res, err := svc.Claim(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, "Claim daily bonus", err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetBonusTable returns the bonus cycle
// @Summary Daily bonus table
// @Tags bonus
// @Produce json
// @Success 200 {object} BonusTableResponse
// @Router /api/v1/bonus/table [get]
func HandleGetBonusTable(svc bonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, BonusTableResponse{Days: svc.Table()})
	}
}
