package slots

import (
	"fmt"
	"sort"

	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/utils"
)

// Selector draws symbols with probability proportional to their weight
type Selector struct {
	symbols    []domain.Symbol
	cumulative []int
	total      int
	rng        func(int) int // Injectable for testing
}

// NewSelector builds the cumulative weight table. A nil rng uses crypto/rand.
func NewSelector(symbols []domain.Symbol, rng func(int) int) (*Selector, error) {
	if rng == nil {
		rng = utils.SecureIntn
	}

	s := &Selector{
		symbols:    append([]domain.Symbol(nil), symbols...),
		cumulative: make([]int, len(symbols)),
		rng:        rng,
	}

	for i, sym := range symbols {
		if sym.Weight <= 0 {
			return nil, fmt.Errorf("%w: symbol %s has non-positive weight %d", domain.ErrConfiguration, sym.Key, sym.Weight)
		}
		s.total += sym.Weight
		s.cumulative[i] = s.total
	}

	if s.total <= 0 {
		return nil, fmt.Errorf("%w: symbol table is empty", domain.ErrConfiguration)
	}

	return s, nil
}

// Draw returns one symbol
func (s *Selector) Draw() domain.Symbol {
	roll := s.rng(s.total)
	i := sort.Search(len(s.cumulative), func(i int) bool { return s.cumulative[i] > roll })
	return s.symbols[i]
}

// DrawReels draws every reel independently
func (s *Selector) DrawReels() [domain.ReelCount]domain.Symbol {
	var reels [domain.ReelCount]domain.Symbol
	for i := range reels {
		reels[i] = s.Draw()
	}
	return reels
}

// Symbols returns a copy of the symbol table
func (s *Selector) Symbols() []domain.Symbol {
	return append([]domain.Symbol(nil), s.symbols...)
}

// Probability returns the chance of drawing the symbol with the given key on one reel
func (s *Selector) Probability(key string) float64 {
	for _, sym := range s.symbols {
		if sym.Key == key {
			return float64(sym.Weight) / float64(s.total)
		}
	}
	return 0
}
