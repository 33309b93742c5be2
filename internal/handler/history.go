package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/history"
)

// HistoryResponse lists a user's recent wins, newest first
type HistoryResponse struct {
	UserID string             `json:"user_id"`
	Wins   []domain.WinRecord `json:"wins"`
}

// HandleGetHistory returns recent wins
// @Summary Win history
// @Tags history
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func HandleGetHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, HistoryResponse{
			UserID: userID,
			Wins:   svc.Recent(r.Context(), userID),
		})
	}
}
