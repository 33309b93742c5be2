package slots

import (
	"sync"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

var (
	symSeven  = domain.Symbol{Key: "SEVEN", Display: "7️⃣", Weight: 1, PayoutMultiplier: 50, IsJackpot: true}
	symCherry = domain.Symbol{Key: "CHERRY", Display: "🍒", Weight: 1, PayoutMultiplier: 8}
	symLemon  = domain.Symbol{Key: "LEMON", Display: "🍋", Weight: 1, PayoutMultiplier: 5}
	symJoker  = domain.Symbol{Key: "JOKER", Display: "🃏", Weight: 1, PayoutMultiplier: 3, IsWildcard: true}
)

// testSymbols has unit weights so rng value i selects testSymbols[i]
func testSymbols() []domain.Symbol {
	return []domain.Symbol{symSeven, symCherry, symLemon, symJoker}
}

func reels(a, b, c domain.Symbol) [domain.ReelCount]domain.Symbol {
	return [domain.ReelCount]domain.Symbol{a, b, c}
}

// scriptedRNG returns queued values in order and repeats the last one when exhausted
type scriptedRNG struct {
	mu     sync.Mutex
	values []int
	pos    int
}

func newScriptedRNG(values ...int) *scriptedRNG {
	return &scriptedRNG{values: values}
}

func (r *scriptedRNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[len(r.values)-1]
	if r.pos < len(r.values) {
		v = r.values[r.pos]
		r.pos++
	}
	return v % n
}

// push replaces whatever is left in the queue
func (r *scriptedRNG) push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append([]int(nil), values...)
	r.pos = 0
}

const (
	rollSeven = iota
	rollCherry
	rollLemon
	rollJoker
)
