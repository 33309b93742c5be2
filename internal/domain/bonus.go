package domain

import "time"

// DailyBonusResult is returned when a user claims the daily login bonus
type DailyBonusResult struct {
	UserID       string    `json:"user_id"`
	Streak       int       `json:"streak"`
	Amount       Money     `json:"amount"`
	BalanceAfter Money     `json:"balance_after"`
	ClaimedAt    time.Time `json:"claimed_at"`
}
