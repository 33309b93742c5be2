package handler

import (
	"net/http"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/slots"
)

// SlotsHandler handles spin, jackpot and paytable requests
type SlotsHandler struct {
	service slots.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// SpinRequest represents a request to spin the reels
type SpinRequest struct {
	UserID string       `json:"user_id" validate:"required,userid"`
	Bet    domain.Money `json:"bet" validate:"required,gt=0"`
}

// MaintenanceRequest toggles maintenance mode
type MaintenanceRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// MaintenanceResponse reports the maintenance flag
type MaintenanceResponse struct {
	Message     string `json:"message"`
	Maintenance bool   `json:"maintenance"`
}

// HandleSpin resolves one paid spin
// @Summary Spin the reels
// @Description Debits the bet, draws three symbols and credits any payout
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.service.Spin(r.Context(), req.UserID, req.Bet)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetJackpot returns the progressive jackpot
// @Summary Current jackpot
// @Tags slots
// @Produce json
// @Success 200 {object} domain.JackpotSnapshot
// @Router /api/v1/jackpot [get]
func (h *SlotsHandler) HandleGetJackpot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Jackpot(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get jackpot", err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// HandleGetPaytable returns symbols, weights, multipliers and streak tiers
// @Summary Paytable
// @Tags slots
// @Produce json
// @Success 200 {object} domain.Paytable
// @Router /api/v1/paytable [get]
func (h *SlotsHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Paytable())
}

// HandleSetMaintenance enables or disables spins
// @Summary Toggle maintenance mode
// @Tags admin
// @Accept json
// @Produce json
// @Param request body MaintenanceRequest true "Maintenance flag"
// @Success 200 {object} MaintenanceResponse
// @Router /api/v1/admin/maintenance [post]
func (h *SlotsHandler) HandleSetMaintenance(w http.ResponseWriter, r *http.Request) {
	var req MaintenanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set maintenance"); err != nil {
		return
	}

	h.service.SetMaintenance(r.Context(), *req.Enabled)
	logger.FromContext(r.Context()).Info(MsgMaintenanceUpdated, "enabled", *req.Enabled)
	respondJSON(w, http.StatusOK, MaintenanceResponse{
		Message:     MsgMaintenanceUpdated,
		Maintenance: h.service.Maintenance(),
	})
}
