package domain

import "time"

// AchievementKind names the counter an achievement is measured against
type AchievementKind string

const (
	AchievementSpins    AchievementKind = "spins"    // resolved spins
	AchievementWins     AchievementKind = "wins"     // paying spins
	AchievementJackpots AchievementKind = "jackpots" // jackpot hits
	AchievementStreak   AchievementKind = "streak"   // best run of consecutive wins
	AchievementBet      AchievementKind = "bet"      // largest single bet
	AchievementPayout   AchievementKind = "payout"   // largest single payout
)

// Achievement is a catalogue entry. Reaching Requirement on its counter unlocks
// it once per player and credits Reward.
type Achievement struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Kind        AchievementKind `json:"kind" yaml:"kind"`
	Requirement int64           `json:"requirement" yaml:"requirement"`
	Reward      Money           `json:"reward" yaml:"reward"`
	Icon        string          `json:"icon,omitempty" yaml:"icon"`
}

// AchievementCounters are a player's lifetime totals and bests
type AchievementCounters struct {
	Spins         int64 `json:"spins"`
	Wins          int64 `json:"wins"`
	Jackpots      int64 `json:"jackpots"`
	BestStreak    int64 `json:"best_streak"`
	BiggestBet    Money `json:"biggest_bet"`
	BiggestPayout Money `json:"biggest_payout"`
}

// Value returns the counter kind measures
func (c AchievementCounters) Value(kind AchievementKind) int64 {
	switch kind {
	case AchievementSpins:
		return c.Spins
	case AchievementWins:
		return c.Wins
	case AchievementJackpots:
		return c.Jackpots
	case AchievementStreak:
		return c.BestStreak
	case AchievementBet:
		return int64(c.BiggestBet)
	case AchievementPayout:
		return int64(c.BiggestPayout)
	}
	return 0
}

// AchievementProgress is one catalogue entry as seen by one player
type AchievementProgress struct {
	Achievement
	Progress   int64      `json:"progress"`
	Completed  bool       `json:"completed"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementUnlockedPayload is the event payload for achievement.unlocked events
type AchievementUnlockedPayload struct {
	UserID        string `json:"user_id"`
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	Reward        Money  `json:"reward"`
	BalanceAfter  Money  `json:"balance_after"`
	Timestamp     int64  `json:"timestamp"`
}
