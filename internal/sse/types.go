package sse

import "github.com/osse101/RewardReels_Go/internal/domain"

// WinPayload is sent for every paying spin
type WinPayload struct {
	UserID     string           `json:"user_id"`
	SpinID     string           `json:"spin_id"`
	Bet        domain.Money     `json:"bet"`
	Payout     domain.Money     `json:"payout"`
	Kind       domain.MatchKind `json:"kind"`
	Symbols    []string         `json:"symbols"`
	Streak     int              `json:"streak"`
	Multiplier float64          `json:"multiplier"`
	Autoplay   bool             `json:"autoplay"`
}

// JackpotPayload is sent when the progressive jackpot is won
type JackpotPayload struct {
	UserID  string       `json:"user_id"`
	SpinID  string       `json:"spin_id"`
	Amount  domain.Money `json:"amount"`
	ResetTo domain.Money `json:"reset_to"`
}

// AutoplayPayload describes an autoplay session starting or stopping
type AutoplayPayload struct {
	UserID      string              `json:"user_id"`
	SessionID   string              `json:"session_id"`
	Strategy    domain.StrategyKind `json:"strategy,omitempty"`
	TotalSpins  int                 `json:"total_spins,omitempty"`
	Reason      domain.StopReason   `json:"reason,omitempty"`
	SpinsPlayed int                 `json:"spins_played,omitempty"`
	Net         domain.Money        `json:"net"`
}

// AchievementPayload announces an unlocked achievement
type AchievementPayload struct {
	UserID        string       `json:"user_id"`
	AchievementID string       `json:"achievement_id"`
	Title         string       `json:"title"`
	Reward        domain.Money `json:"reward"`
}
