package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/stats"
)

// HandleGetStats returns global statistics, or one user's when user_id is given
// @Summary Game statistics
// @Description Spins, wins, losses, jackpots, biggest and average win, win streaks and RTP
// @Tags stats
// @Produce json
// @Param user_id query string false "User ID"
// @Success 200 {object} domain.GameStats
// @Router /api/v1/stats [get]
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get(QueryParamUserID) == "" {
			respondJSON(w, http.StatusOK, svc.GetGlobalStats(r.Context()))
			return
		}

		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.GetUserStats(r.Context(), userID))
	}
}

// HandleResetStats clears all statistics
// @Summary Reset statistics
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/stats/reset [post]
func HandleResetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Reset(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStatsReset})
	}
}
