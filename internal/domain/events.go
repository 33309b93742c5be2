package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.completed")
const (
	// EventTypeSpinCompleted is published after a spin has been committed to the ledger
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeJackpotHit is published when a spin claims the progressive pool
	EventTypeJackpotHit = "jackpot.hit"

	// EventTypeAutoplayStarted is published when an autoplay session begins
	EventTypeAutoplayStarted = "autoplay.started"

	// EventTypeAutoplayStopped is published when an autoplay session reaches Stopped
	EventTypeAutoplayStopped = "autoplay.stopped"

	// EventTypeBonusClaimed is published when a daily login bonus is credited
	EventTypeBonusClaimed = "bonus.claimed"

	// EventTypeAchievementUnlocked is published when an achievement reward is credited
	EventTypeAchievementUnlocked = "achievement.unlocked"
)

// SpinCompletedPayload is the event payload for spin.completed events
type SpinCompletedPayload struct {
	SpinID           string    `json:"spin_id"`
	UserID           string    `json:"user_id"`
	Bet              Money     `json:"bet"`
	Payout           Money     `json:"payout"`
	Kind             MatchKind `json:"kind"`
	Symbols          []string  `json:"symbols"`
	StreakMultiplier float64   `json:"streak_multiplier"`
	ConsecutiveWins  int       `json:"consecutive_wins"`
	JackpotHit       bool      `json:"jackpot_hit"`
	Autoplay         bool      `json:"autoplay"`
	Timestamp        int64     `json:"timestamp"`
}

// JackpotHitPayload is the event payload for jackpot.hit events
type JackpotHitPayload struct {
	SpinID    string `json:"spin_id"`
	UserID    string `json:"user_id"`
	Amount    Money  `json:"amount"`
	ResetTo   Money  `json:"reset_to"`
	Timestamp int64  `json:"timestamp"`
}

// AutoplayStartedPayload is the event payload for autoplay.started events
type AutoplayStartedPayload struct {
	SessionID  string       `json:"session_id"`
	UserID     string       `json:"user_id"`
	TotalSpins int          `json:"total_spins"`
	BaseBet    Money        `json:"base_bet"`
	Strategy   StrategyKind `json:"strategy"`
	Timestamp  int64        `json:"timestamp"`
}

// AutoplayStoppedPayload is the event payload for autoplay.stopped events
type AutoplayStoppedPayload struct {
	SessionID   string     `json:"session_id"`
	UserID      string     `json:"user_id"`
	Reason      StopReason `json:"reason"`
	SpinsPlayed int        `json:"spins_played"`
	TotalWon    Money      `json:"total_won"`
	TotalLost   Money      `json:"total_lost"`
	Timestamp   int64      `json:"timestamp"`
}

// BonusClaimedPayload is the event payload for bonus.claimed events
type BonusClaimedPayload struct {
	UserID    string `json:"user_id"`
	Streak    int    `json:"streak"`
	Amount    Money  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}
