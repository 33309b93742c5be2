package autoplay

import (
	"fmt"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// FibonacciSequence is the bet progression in units of the base bet
var FibonacciSequence = []domain.Money{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

// Strategy computes the next cycle's bet from the spin just resolved.
// Clamping to limits and balance is the controller's job.
type Strategy interface {
	Next(won bool, bet domain.Money) (next domain.Money, halt bool)
}

// NewStrategy builds the strategy named by cfg for a session with the given base bet
func NewStrategy(cfg domain.StrategyConfig, base domain.Money) (Strategy, error) {
	cfg, err := normalizeStrategy(cfg)
	if err != nil {
		return nil, err
	}

	var inner Strategy
	switch cfg.Kind {
	case domain.StrategyFixed:
		inner = fixed{}
	case domain.StrategyMartingale:
		inner = &martingale{cfg: cfg, base: base}
	case domain.StrategyReverseMartingale:
		inner = &reverseMartingale{cfg: cfg, base: base}
	case domain.StrategyFibonacci:
		inner = &fibonacci{cfg: cfg, base: base}
	}
	return haltOnStop{cfg: cfg, inner: inner}, nil
}

// normalizeStrategy fills defaults and rejects unknown values
func normalizeStrategy(cfg domain.StrategyConfig) (domain.StrategyConfig, error) {
	if cfg.Kind == "" {
		cfg.Kind = domain.StrategyFixed
	}
	if cfg.OnWin == "" {
		cfg.OnWin = domain.ActionContinue
	}
	if cfg.OnLoss == "" {
		cfg.OnLoss = domain.ActionContinue
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = domain.DefaultStrategyMultiplier
	}

	switch cfg.Kind {
	case domain.StrategyFixed, domain.StrategyMartingale, domain.StrategyReverseMartingale, domain.StrategyFibonacci:
	default:
		return cfg, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidStrategy, cfg.Kind)
	}
	for _, a := range []domain.StrategyAction{cfg.OnWin, cfg.OnLoss} {
		switch a {
		case domain.ActionContinue, domain.ActionReset, domain.ActionStop:
		default:
			return cfg, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidStrategy, a)
		}
	}
	if cfg.Multiplier <= 1 {
		return cfg, fmt.Errorf("%w: multiplier must be greater than 1", domain.ErrInvalidStrategy)
	}
	return cfg, nil
}

// haltOnStop applies the stop action for every strategy kind
type haltOnStop struct {
	cfg   domain.StrategyConfig
	inner Strategy
}

func (h haltOnStop) Next(won bool, bet domain.Money) (domain.Money, bool) {
	if (won && h.cfg.OnWin == domain.ActionStop) || (!won && h.cfg.OnLoss == domain.ActionStop) {
		return bet, true
	}
	return h.inner.Next(won, bet)
}

type fixed struct{}

func (fixed) Next(_ bool, bet domain.Money) (domain.Money, bool) {
	return bet, false
}

func scale(bet domain.Money, m float64) domain.Money {
	return domain.Money(float64(bet) * m)
}

// martingale multiplies after a loss
type martingale struct {
	cfg  domain.StrategyConfig
	base domain.Money
}

func (m *martingale) Next(won bool, bet domain.Money) (domain.Money, bool) {
	if won {
		if m.cfg.OnWin == domain.ActionReset {
			return m.base, false
		}
		return bet, false
	}
	if m.cfg.OnLoss == domain.ActionReset {
		return m.base, false
	}
	return scale(bet, m.cfg.Multiplier), false
}

// reverseMartingale multiplies after a win
type reverseMartingale struct {
	cfg  domain.StrategyConfig
	base domain.Money
}

func (r *reverseMartingale) Next(won bool, bet domain.Money) (domain.Money, bool) {
	if won {
		if r.cfg.OnWin == domain.ActionReset {
			return r.base, false
		}
		return scale(bet, r.cfg.Multiplier), false
	}
	if r.cfg.OnLoss == domain.ActionReset {
		return r.base, false
	}
	return bet, false
}

// fibonacci walks FibonacciSequence scaled by the base bet
type fibonacci struct {
	cfg  domain.StrategyConfig
	base domain.Money
	idx  int
}

func (f *fibonacci) Next(won bool, _ domain.Money) (domain.Money, bool) {
	switch {
	case won && f.cfg.OnWin == domain.ActionReset:
		f.idx = 0
	case won:
		if f.idx > 0 {
			f.idx--
		}
	case f.cfg.OnLoss == domain.ActionReset:
		f.idx = 0
	default:
		if f.idx < len(FibonacciSequence)-1 {
			f.idx++
		}
	}
	return FibonacciSequence[f.idx] * f.base, false
}
