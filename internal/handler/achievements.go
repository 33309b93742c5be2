package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/domain"
)

// AchievementsResponse lists every achievement with the user's progress
type AchievementsResponse struct {
	UserID       string                       `json:"user_id"`
	Unlocked     int                          `json:"unlocked"`
	Achievements []domain.AchievementProgress `json:"achievements"`
}

// HandleGetAchievements returns the user's achievement progress
// @Summary Achievement progress
// @Tags achievements
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} AchievementsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func HandleGetAchievements(svc achievements.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDParam(r, w)
		if !ok {
			return
		}

		progress, err := svc.Progress(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get achievements", err)
			return
		}

		res := AchievementsResponse{UserID: userID, Achievements: progress}
		for _, p := range progress {
			if p.Completed {
				res.Unlocked++
			}
		}
		respondJSON(w, http.StatusOK, res)
	}
}
