package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/RewardReels_Go/internal/eventlog"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// EventLogResponse lists audited game events, newest first
type EventLogResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// HandleGetEventLog returns audited game events
// @Summary Game event audit log
// @Tags admin
// @Produce json
// @Param user_id query string false "User ID"
// @Param type query string false "Event type, e.g. spin.completed"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} EventLogResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/events [get]
func HandleGetEventLog(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := eventlog.Filter{EventType: q.Get(QueryParamEventType)}

		if q.Get(QueryParamUserID) != "" {
			userID, ok := GetUserIDParam(r, w)
			if !ok {
				return
			}
			filter.UserID = userID
		}
		if raw := q.Get(QueryParamLimit); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			filter.Limit = n
		}
		if raw := q.Get(QueryParamSince); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		entries, err := svc.Query(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error("Event log query failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, EventLogResponse{Events: entries})
	}
}
