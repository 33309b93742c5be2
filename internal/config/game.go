package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// GameConfig is the tunable game math loaded from configs/game.yaml
type GameConfig struct {
	Symbols         []domain.Symbol      `yaml:"symbols"`
	PairMultiplier  float64              `yaml:"pair_multiplier"`
	WildcardBonus   float64              `yaml:"wildcard_bonus"`
	MinBet          domain.Money         `yaml:"min_bet"`
	MaxBet          domain.Money         `yaml:"max_bet"`
	StartingBalance domain.Money         `yaml:"starting_balance"`
	StreakTiers     []domain.StreakTier  `yaml:"streak_tiers"`
	Jackpot         JackpotConfig        `yaml:"jackpot"`
	DailyBonus      []domain.Money       `yaml:"daily_bonus"`
	Autoplay        AutoplayLimits       `yaml:"autoplay"`
	HistorySize     int                  `yaml:"history_size"`
	Achievements    []domain.Achievement `yaml:"achievements"`
}

// JackpotConfig configures the progressive pool
type JackpotConfig struct {
	TableID          string       `yaml:"table_id"`
	Base             domain.Money `yaml:"base"`
	Max              domain.Money `yaml:"max"`
	AccrualPerSecond float64      `yaml:"accrual_per_second"`
	ContributionRate float64      `yaml:"contribution_rate"`
}

// AutoplayLimits bounds autoplay session requests
type AutoplayLimits struct {
	DefaultSpins int `yaml:"default_spins"`
	MaxSpins     int `yaml:"max_spins"`
}

// DefaultGameConfig returns the built-in paytable
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Symbols: []domain.Symbol{
			{Key: "SEVEN", Display: "7️⃣", Weight: 1, PayoutMultiplier: 50, IsJackpot: true},
			{Key: "DIAMOND", Display: "💎", Weight: 2, PayoutMultiplier: 30},
			{Key: "CROWN", Display: "👑", Weight: 3, PayoutMultiplier: 20},
			{Key: "STAR", Display: "🌟", Weight: 4, PayoutMultiplier: 15},
			{Key: "SLOT", Display: "🎰", Weight: 5, PayoutMultiplier: 10},
			{Key: "CHERRY", Display: "🍒", Weight: 6, PayoutMultiplier: 8},
			{Key: "LEMON", Display: "🍋", Weight: 7, PayoutMultiplier: 5},
			{Key: "JOKER", Display: "🃏", Weight: 8, PayoutMultiplier: 3, IsWildcard: true},
		},
		PairMultiplier:  1.5,
		WildcardBonus:   0.5,
		MinBet:          1,
		MaxBet:          100,
		StartingBalance: 100,
		StreakTiers: []domain.StreakTier{
			{MinStreak: 0, Multiplier: 1},
			{MinStreak: 3, Multiplier: 1.2},
			{MinStreak: 5, Multiplier: 1.5},
			{MinStreak: 7, Multiplier: 2},
			{MinStreak: 10, Multiplier: 3},
		},
		Jackpot: JackpotConfig{
			TableID:          "main",
			Base:             5000,
			Max:              1000000,
			AccrualPerSecond: 1,
			ContributionRate: 0.01,
		},
		DailyBonus: []domain.Money{10, 15, 20, 25, 30, 40, 50},
		Autoplay: AutoplayLimits{
			DefaultSpins: 50,
			MaxSpins:     1000,
		},
		HistorySize: 10,
		Achievements: []domain.Achievement{
			{ID: "first_win", Title: "First Win", Description: "Win your first spin", Kind: domain.AchievementWins, Requirement: 1, Reward: 25, Icon: "🎉"},
			{ID: "big_winner", Title: "Big Winner", Description: "Win 1,000 credits on a single spin", Kind: domain.AchievementPayout, Requirement: 1000, Reward: 100, Icon: "💰"},
			{ID: "jackpot_hunter", Title: "Jackpot Hunter", Description: "Hit the jackpot 3 times", Kind: domain.AchievementJackpots, Requirement: 3, Reward: 1000, Icon: "🏆"},
			{ID: "lucky_streak", Title: "Lucky Streak", Description: "Win 5 spins in a row", Kind: domain.AchievementStreak, Requirement: 5, Reward: 500, Icon: "🍀"},
			{ID: "spin_master", Title: "Spin Master", Description: "Spin the reels 1,000 times", Kind: domain.AchievementSpins, Requirement: 1000, Reward: 250, Icon: "🎰"},
			{ID: "high_roller", Title: "High Roller", Description: "Place a bet of 100 credits", Kind: domain.AchievementBet, Requirement: 100, Reward: 50, Icon: "💎"},
		},
	}
}

// LoadGameConfig reads a YAML game config. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadGameConfig(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return GameConfig{}, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("%w: failed to parse game config %s: %v", domain.ErrConfiguration, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}

	return cfg, nil
}

// Validate checks the invariants the engine relies on
func (g GameConfig) Validate() error {
	if len(g.Symbols) == 0 {
		return fmt.Errorf("%w: symbol table is empty", domain.ErrConfiguration)
	}

	var wildcards, jackpots int
	seen := make(map[string]struct{}, len(g.Symbols))
	for _, s := range g.Symbols {
		if s.Key == "" {
			return fmt.Errorf("%w: symbol with empty key", domain.ErrConfiguration)
		}
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("%w: duplicate symbol %s", domain.ErrConfiguration, s.Key)
		}
		seen[s.Key] = struct{}{}
		if s.PayoutMultiplier < 0 {
			return fmt.Errorf("%w: symbol %s has negative multiplier", domain.ErrConfiguration, s.Key)
		}
		if s.IsWildcard {
			wildcards++
		}
		if s.IsJackpot {
			jackpots++
		}
	}
	if wildcards != 1 {
		return fmt.Errorf("%w: expected exactly one wildcard symbol, got %d", domain.ErrConfiguration, wildcards)
	}
	if jackpots != 1 {
		return fmt.Errorf("%w: expected exactly one jackpot symbol, got %d", domain.ErrConfiguration, jackpots)
	}

	if g.PairMultiplier <= 0 {
		return fmt.Errorf("%w: pair multiplier must be positive", domain.ErrConfiguration)
	}
	if g.WildcardBonus < 0 {
		return fmt.Errorf("%w: wildcard bonus must be non-negative", domain.ErrConfiguration)
	}
	if g.MinBet <= 0 || g.MaxBet < g.MinBet {
		return fmt.Errorf("%w: bet limits must satisfy 0 < min_bet <= max_bet", domain.ErrConfiguration)
	}
	if g.StartingBalance < 0 {
		return fmt.Errorf("%w: starting balance must be non-negative", domain.ErrConfiguration)
	}
	if len(g.DailyBonus) == 0 {
		return fmt.Errorf("%w: daily bonus table is empty", domain.ErrConfiguration)
	}
	if g.Autoplay.MaxSpins <= 0 || g.Autoplay.DefaultSpins <= 0 || g.Autoplay.DefaultSpins > g.Autoplay.MaxSpins {
		return fmt.Errorf("%w: autoplay spin limits must satisfy 0 < default_spins <= max_spins", domain.ErrConfiguration)
	}
	if g.HistorySize <= 0 {
		return fmt.Errorf("%w: history size must be positive", domain.ErrConfiguration)
	}

	return nil
}
