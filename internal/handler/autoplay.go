package handler

import (
	"context"
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// AutoplayController is the autoplay surface used by the HTTP layer
type AutoplayController interface {
	Start(ctx context.Context, userID string, cfg domain.AutoplayConfig) (*domain.AutoplaySession, error)
	Stop(ctx context.Context, userID string) (*domain.AutoplaySession, error)
	State(userID string) domain.AutoplaySession
}

// AutoplayHandler handles autoplay session requests
type AutoplayHandler struct {
	controller AutoplayController
}

// NewAutoplayHandler creates a new autoplay handler
func NewAutoplayHandler(controller AutoplayController) *AutoplayHandler {
	return &AutoplayHandler{controller: controller}
}

// StartAutoplayRequest starts an autoplay session. Zero TotalSpins uses the server default.
type StartAutoplayRequest struct {
	UserID         string                `json:"user_id" validate:"required,userid"`
	TotalSpins     int                   `json:"total_spins" validate:"gte=0"`
	BaseBet        domain.Money          `json:"base_bet" validate:"required,gt=0"`
	MaxBet         domain.Money          `json:"max_bet" validate:"gte=0"`
	Strategy       domain.StrategyConfig `json:"strategy"`
	StopConditions domain.StopConditions `json:"stop_conditions"`
}

// UserRequest carries only a user id
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,userid"`
}

// HandleStart starts autoplay for a user
// @Summary Start autoplay
// @Tags autoplay
// @Accept json
// @Produce json
// @Param request body StartAutoplayRequest true "Autoplay configuration"
// @Success 201 {object} domain.AutoplaySession
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/autoplay/start [post]
func (h *AutoplayHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartAutoplayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start autoplay"); err != nil {
		return
	}

	session, err := h.controller.Start(r.Context(), req.UserID, domain.AutoplayConfig{
		TotalSpins:     req.TotalSpins,
		BaseBet:        req.BaseBet,
		MaxBet:         req.MaxBet,
		Strategy:       req.Strategy,
		StopConditions: req.StopConditions,
	})
	if err != nil {
		respondServiceError(w, r, "Start autoplay", err)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// HandleStop requests the user's session to stop
// @Summary Stop autoplay
// @Tags autoplay
// @Accept json
// @Produce json
// @Param request body UserRequest true "User"
// @Success 200 {object} domain.AutoplaySession
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/autoplay/stop [post]
func (h *AutoplayHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Stop autoplay"); err != nil {
		return
	}

	session, err := h.controller.Stop(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Stop autoplay", err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// HandleGetState returns the user's latest session, or an idle session
// @Summary Autoplay state
// @Tags autoplay
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.AutoplaySession
// @Router /api/v1/autoplay/state [get]
func (h *AutoplayHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDParam(r, w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.controller.State(userID))
}
