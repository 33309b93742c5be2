package achievements

import (
	"fmt"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

var knownKinds = map[domain.AchievementKind]bool{
	domain.AchievementSpins:    true,
	domain.AchievementWins:     true,
	domain.AchievementJackpots: true,
	domain.AchievementStreak:   true,
	domain.AchievementBet:      true,
	domain.AchievementPayout:   true,
}

// ValidateCatalogue checks that ids are unique and every entry is reachable
func ValidateCatalogue(catalogue []domain.Achievement) error {
	seen := make(map[string]bool, len(catalogue))
	for _, a := range catalogue {
		switch {
		case a.ID == "":
			return fmt.Errorf("%w: achievement with empty id", domain.ErrConfiguration)
		case seen[a.ID]:
			return fmt.Errorf("%w: duplicate achievement %q", domain.ErrConfiguration, a.ID)
		case !knownKinds[a.Kind]:
			return fmt.Errorf("%w: achievement %q has unknown kind %q", domain.ErrConfiguration, a.ID, a.Kind)
		case a.Requirement <= 0:
			return fmt.Errorf("%w: achievement %q requirement must be positive", domain.ErrConfiguration, a.ID)
		case a.Reward < 0:
			return fmt.Errorf("%w: achievement %q reward must be non-negative", domain.ErrConfiguration, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// apply folds one resolved spin into a player's counters
func apply(c domain.AchievementCounters, spin domain.SpinCompletedPayload) domain.AchievementCounters {
	c.Spins++
	if spin.Kind.IsWin() {
		c.Wins++
	}
	if spin.JackpotHit {
		c.Jackpots++
	}
	if s := int64(spin.ConsecutiveWins); s > c.BestStreak {
		c.BestStreak = s
	}
	if spin.Bet > c.BiggestBet {
		c.BiggestBet = spin.Bet
	}
	if spin.Payout > c.BiggestPayout {
		c.BiggestPayout = spin.Payout
	}
	return c
}
