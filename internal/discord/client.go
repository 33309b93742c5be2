package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/handler"
)

const (
	clientTimeout   = 10 * time.Second
	maxRetries      = 3
	retryBaseDelay  = 500 * time.Millisecond
	userIDPrefix    = "discord:"
	headerAPIKey    = "X-API-Key"
	headerMediaType = "Content-Type"
	mediaTypeJSON   = "application/json"
)

// APIError is a non-2xx response from the game API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// APIClient talks to the RewardReels HTTP API
type APIClient struct {
	BaseURL    string
	APIKey     string
	Client     *http.Client
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Client:     &http.Client{Timeout: clientTimeout},
		retryDelay: retryBaseDelay,
	}
}

// PlayerID maps a Discord user id onto the game's user id namespace
func PlayerID(discordID string) string {
	return userIDPrefix + discordID
}

// do sends a JSON request, retrying transport failures and 5xx responses with
// exponential backoff, and decodes a 2xx body into out when out is non-nil.
func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set(headerMediaType, mediaTypeJSON)
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = decodeAPIError(resp)
			resp.Body.Close()
			slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		err = decodeResponse(resp, out)
		resp.Body.Close()
		return err
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body handler.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}

func userQuery(path, userID string) string {
	return path + "?" + url.Values{"user_id": {userID}}.Encode()
}

// EnsureAccount opens the player's account, treating an existing one as success
func (c *APIClient) EnsureAccount(ctx context.Context, userID string) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/accounts", handler.UserRequest{UserID: userID}, nil)
	if err != nil && !IsStatus(err, http.StatusConflict) {
		return err
	}
	return nil
}

// Balance returns the player's balance
func (c *APIClient) Balance(ctx context.Context, userID string) (domain.Money, error) {
	var out handler.BalanceResponse
	if err := c.do(ctx, http.MethodGet, userQuery("/api/v1/balance", userID), nil, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// Spin plays one spin
func (c *APIClient) Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error) {
	var out domain.SpinResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/spin", handler.SpinRequest{UserID: userID, Bet: bet}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Jackpot returns the progressive jackpot
func (c *APIClient) Jackpot(ctx context.Context) (*domain.JackpotSnapshot, error) {
	var out domain.JackpotSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/v1/jackpot", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Paytable returns symbols and multipliers
func (c *APIClient) Paytable(ctx context.Context) (*domain.Paytable, error) {
	var out domain.Paytable
	if err := c.do(ctx, http.MethodGet, "/api/v1/paytable", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimDailyBonus claims today's login bonus
func (c *APIClient) ClaimDailyBonus(ctx context.Context, userID string) (*domain.DailyBonusResult, error) {
	var out domain.DailyBonusResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/bonus/daily", handler.UserRequest{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartAutoplay starts an autoplay session
func (c *APIClient) StartAutoplay(ctx context.Context, req handler.StartAutoplayRequest) (*domain.AutoplaySession, error) {
	var out domain.AutoplaySession
	if err := c.do(ctx, http.MethodPost, "/api/v1/autoplay/start", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StopAutoplay asks the player's session to stop
func (c *APIClient) StopAutoplay(ctx context.Context, userID string) (*domain.AutoplaySession, error) {
	var out domain.AutoplaySession
	if err := c.do(ctx, http.MethodPost, "/api/v1/autoplay/stop", handler.UserRequest{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutoplayState returns the player's latest session
func (c *APIClient) AutoplayState(ctx context.Context, userID string) (*domain.AutoplaySession, error) {
	var out domain.AutoplaySession
	if err := c.do(ctx, http.MethodGet, userQuery("/api/v1/autoplay/state", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the player's statistics
func (c *APIClient) Stats(ctx context.Context, userID string) (*domain.GameStats, error) {
	var out domain.GameStats
	if err := c.do(ctx, http.MethodGet, userQuery("/api/v1/stats", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns the player's recent wins
func (c *APIClient) History(ctx context.Context, userID string) ([]domain.WinRecord, error) {
	var out handler.HistoryResponse
	if err := c.do(ctx, http.MethodGet, userQuery("/api/v1/history", userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Wins, nil
}

// Achievements returns the user's progress over the achievement catalogue
func (c *APIClient) Achievements(ctx context.Context, userID string) (*handler.AchievementsResponse, error) {
	var out handler.AchievementsResponse
	if err := c.do(ctx, http.MethodGet, userQuery("/api/v1/achievements", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the API answers its liveness check
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
