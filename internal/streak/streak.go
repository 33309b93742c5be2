// Package streak tracks consecutive wins and maps them to payout multipliers.
package streak

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// Table maps consecutive-win counts to multipliers
type Table struct {
	tiers []domain.StreakTier
}

// NewTable validates and sorts tiers. The lowest tier must start at zero with
// multiplier 1, thresholds must be distinct and multipliers non-decreasing.
func NewTable(tiers []domain.StreakTier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: streak table is empty", domain.ErrConfiguration)
	}

	sorted := append([]domain.StreakTier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinStreak < sorted[j].MinStreak })

	if sorted[0].MinStreak != 0 || sorted[0].Multiplier != 1 {
		return nil, fmt.Errorf("%w: streak table must start with {0, 1}", domain.ErrConfiguration)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinStreak == sorted[i-1].MinStreak {
			return nil, fmt.Errorf("%w: duplicate streak threshold %d", domain.ErrConfiguration, sorted[i].MinStreak)
		}
		if sorted[i].Multiplier < sorted[i-1].Multiplier {
			return nil, fmt.Errorf("%w: streak multipliers must not decrease", domain.ErrConfiguration)
		}
	}

	return &Table{tiers: sorted}, nil
}

// MultiplierFor returns the multiplier of the highest tier whose threshold is <= wins
func (t *Table) MultiplierFor(wins int) float64 {
	m := t.tiers[0].Multiplier
	for _, tier := range t.tiers {
		if wins < tier.MinStreak {
			break
		}
		m = tier.Multiplier
	}
	return m
}

// Tiers returns the sorted tiers
func (t *Table) Tiers() []domain.StreakTier {
	return append([]domain.StreakTier(nil), t.tiers...)
}

// Tracker holds one player's streak. Not safe for concurrent use; see Registry.
type Tracker struct {
	table *Table
	state domain.StreakState
}

// NewTracker creates a tracker at zero wins
func NewTracker(table *Table) *Tracker {
	return &Tracker{
		table: table,
		state: domain.StreakState{CurrentMultiplier: table.MultiplierFor(0)},
	}
}

// Preview returns the state OnSpinResult would produce without applying it
func (tr *Tracker) Preview(won bool) domain.StreakState {
	next := tr.state
	if won {
		next.ConsecutiveWins++
		if next.ConsecutiveWins > next.MaxStreak {
			next.MaxStreak = next.ConsecutiveWins
		}
	} else {
		next.ConsecutiveWins = 0
	}
	next.CurrentMultiplier = tr.table.MultiplierFor(next.ConsecutiveWins)
	return next
}

// OnSpinResult applies a resolved spin and returns the new state
func (tr *Tracker) OnSpinResult(won bool) domain.StreakState {
	tr.state = tr.Preview(won)
	return tr.state
}

// State returns the current state
func (tr *Tracker) State() domain.StreakState {
	return tr.state
}

// Reset clears the current streak and keeps the historical maximum
func (tr *Tracker) Reset() {
	tr.state.ConsecutiveWins = 0
	tr.state.CurrentMultiplier = tr.table.MultiplierFor(0)
}

// Registry holds one tracker per user
type Registry struct {
	mu       sync.Mutex
	table    *Table
	trackers map[string]*Tracker
}

// NewRegistry creates an empty registry
func NewRegistry(table *Table) *Registry {
	return &Registry{
		table:    table,
		trackers: make(map[string]*Tracker),
	}
}

func (r *Registry) tracker(userID string) *Tracker {
	tr, ok := r.trackers[userID]
	if !ok {
		tr = NewTracker(r.table)
		r.trackers[userID] = tr
	}
	return tr
}

// Preview returns the user's next state for a spin outcome without committing it
func (r *Registry) Preview(userID string, won bool) domain.StreakState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker(userID).Preview(won)
}

// Commit applies a resolved spin for the user
func (r *Registry) Commit(userID string, won bool) domain.StreakState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker(userID).OnSpinResult(won)
}

// State returns the user's current state
func (r *Registry) State(userID string) domain.StreakState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker(userID).State()
}

// Table returns the shared multiplier table
func (r *Registry) Table() *Table {
	return r.table
}
