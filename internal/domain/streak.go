package domain

// StreakTier unlocks a multiplier once a run of consecutive wins reaches MinStreak
type StreakTier struct {
	MinStreak  int     `json:"min_streak" yaml:"min_streak"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// StreakState is the per-user win streak
type StreakState struct {
	ConsecutiveWins   int     `json:"consecutive_wins"`
	CurrentMultiplier float64 `json:"current_multiplier"`
	MaxStreak         int     `json:"max_streak"`
}
