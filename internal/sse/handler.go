package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Handler streams hub events to one client until it disconnects or the hub stops.
// The optional "types" query parameter narrows the stream, e.g. ?types=jackpot.hit,spin.win
//
// @Summary Live game event stream
// @Description Server-sent events for wins, jackpot hits and autoplay sessions
// @Tags stream
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Success 200 {string} string "event stream"
// @Failure 503 {string} string "stream is shutting down"
// @Security ApiKeyAuth
// @Router /api/v1/stream [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var types []string
		if raw := r.URL.Query().Get(QueryParamTypes); raw != "" {
			types = strings.Split(raw, ",")
		}

		client, ok := hub.Register(types)
		if !ok {
			http.Error(w, ErrMsgHubStopped, http.StatusServiceUnavailable)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", types)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		write := func(evt Event) bool {
			msg, err := FormatMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err, "event_type", evt.Type)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": types},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.Events:
				if !open {
					return
				}
				if !write(evt) {
					return
				}
			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
