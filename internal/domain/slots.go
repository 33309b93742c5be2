package domain

import "time"

// ReelCount is the number of reels on the machine
const ReelCount = 3

// Money is an amount in the smallest currency unit
type Money int64

// Symbol is one entry of the reel symbol table. Symbols are immutable once loaded.
type Symbol struct {
	Key              string  `json:"key" yaml:"key"`
	Display          string  `json:"display" yaml:"display"`
	Weight           int     `json:"weight" yaml:"weight"`
	PayoutMultiplier float64 `json:"payout_multiplier" yaml:"payout_multiplier"`
	IsWildcard       bool    `json:"is_wildcard" yaml:"wildcard"`
	IsJackpot        bool    `json:"is_jackpot" yaml:"jackpot"`
}

// MatchKind classifies a set of reels
type MatchKind string

const (
	MatchNone    MatchKind = "none"
	MatchPair    MatchKind = "pair"
	MatchTriple  MatchKind = "triple"
	MatchJackpot MatchKind = "jackpot"
)

// IsWin reports whether the match kind pays out
func (k MatchKind) IsWin() bool {
	return k != MatchNone && k != ""
}

// SpinOutcome is the classification of three drawn symbols
type SpinOutcome struct {
	Symbols       [ReelCount]Symbol `json:"symbols"`
	Kind          MatchKind         `json:"kind"`
	Base          Symbol            `json:"base"`
	WildcardCount int               `json:"wildcard_count"`
}

// SpinResult is the committed result of a single spin
type SpinResult struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id"`
	Bet              Money       `json:"bet"`
	Payout           Money       `json:"payout"`
	Outcome          SpinOutcome `json:"outcome"`
	IsWin            bool        `json:"is_win"`
	JackpotHit       bool        `json:"jackpot_hit"`
	JackpotAmount    Money       `json:"jackpot_amount,omitempty"`
	StreakMultiplier float64     `json:"streak_multiplier"`
	ConsecutiveWins  int         `json:"consecutive_wins"`
	BalanceBefore    Money       `json:"balance_before"`
	BalanceAfter     Money       `json:"balance_after"`
	Message          string      `json:"message"`
	ResolvedAt       time.Time   `json:"resolved_at"`
}

// Net returns payout minus bet
func (r *SpinResult) Net() Money {
	return r.Payout - r.Bet
}

// Paytable describes the active game configuration for clients
type Paytable struct {
	Symbols        []Symbol     `json:"symbols"`
	PairMultiplier float64      `json:"pair_multiplier"`
	WildcardBonus  float64      `json:"wildcard_bonus"`
	StreakTiers    []StreakTier `json:"streak_tiers"`
	MinBet         Money        `json:"min_bet"`
	MaxBet         Money        `json:"max_bet"`
}
