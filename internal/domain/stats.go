package domain

import "time"

// GameStats aggregates spin results across all players
type GameStats struct {
	TotalSpins       int64     `json:"total_spins"`
	Wins             int64     `json:"wins"`
	Losses           int64     `json:"losses"`
	JackpotsHit      int64     `json:"jackpots_hit"`
	TotalBets        Money     `json:"total_bets"`
	TotalPayout      Money     `json:"total_payout"`
	BiggestWin       Money     `json:"biggest_win"`
	AverageWin       float64   `json:"average_win"`
	CurrentWinStreak int       `json:"current_win_streak"`
	MaxWinStreak     int       `json:"max_win_streak"`
	RTP              float64   `json:"rtp"`
	Since            time.Time `json:"since"`
}

// WinRecord is one entry in a player's recent win history
type WinRecord struct {
	ID        string    `json:"id"`
	Amount    Money     `json:"amount"`
	Symbols   []string  `json:"symbols"`
	Kind      MatchKind `json:"kind"`
	IsJackpot bool      `json:"is_jackpot"`
	Streak    int       `json:"streak"`
	Timestamp time.Time `json:"timestamp"`
}
