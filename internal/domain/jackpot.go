package domain

import "time"

// JackpotSnapshot is a point-in-time view of the progressive pool
type JackpotSnapshot struct {
	TableID          string     `json:"table_id"`
	Current          Money      `json:"current"`
	Base             Money      `json:"base"`
	Max              Money      `json:"max"`
	AccrualPerSecond float64    `json:"accrual_per_second"`
	ContributionRate float64    `json:"contribution_rate"`
	HitCount         int64      `json:"hit_count"`
	LastHitAt        *time.Time `json:"last_hit_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
