//go:build staging

package staging

import (
	"net/http"
	"testing"
	"time"
)

type sessionResponse struct {
	Status      string `json:"status"`
	StopReason  string `json:"stop_reason"`
	SpinsPlayed int    `json:"spins_played"`
}

func TestAutoplayStartAndStop(t *testing.T) {
	userID := newPlayer(t)

	resp, body := makeRequest(t, http.MethodPost, "/api/v1/autoplay/start", map[string]interface{}{
		"user_id":     userID,
		"total_spins": 50,
		"base_bet":    1,
		"strategy":    map[string]string{"kind": "fixed"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Start: expected 201, got %d: %s", resp.StatusCode, body)
	}

	resp, _ = makeRequest(t, http.MethodPost, "/api/v1/autoplay/start", map[string]interface{}{"user_id": userID, "base_bet": 1})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Second start: expected 409, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/autoplay/stop", map[string]string{"user_id": userID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Stop: expected 200, got %d: %s", resp.StatusCode, body)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		_, body = makeRequest(t, http.MethodGet, "/api/v1/autoplay/state?user_id="+userID, nil)
		var state sessionResponse
		decode(t, body, &state)
		if state.Status == "stopped" {
			if state.StopReason != "manual" {
				t.Errorf("Expected manual stop, got %q", state.StopReason)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Session still %q after stop", state.Status)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
