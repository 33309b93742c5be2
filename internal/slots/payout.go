package slots

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// Calculator turns an outcome into a payout. It is pure and safe for concurrent use.
type Calculator struct {
	pairMultiplier decimal.Decimal
	wildcardBonus  decimal.Decimal
}

// NewCalculator creates a payout calculator
func NewCalculator(pairMultiplier, wildcardBonus float64) Calculator {
	return Calculator{
		pairMultiplier: decimal.NewFromFloat(pairMultiplier),
		wildcardBonus:  decimal.NewFromFloat(wildcardBonus),
	}
}

// Calculate returns the payout for a resolved outcome and whether the jackpot was won.
// jackpot is the pool value at resolution time; resetting the pool is the caller's job.
// Amounts are truncated toward zero and never negative.
func (c Calculator) Calculate(o domain.SpinOutcome, bet domain.Money, streakMultiplier float64, jackpot domain.Money) (domain.Money, bool) {
	if bet <= 0 || !o.Kind.IsWin() {
		return 0, false
	}

	streak := decimal.NewFromFloat(streakMultiplier)
	if streak.LessThan(decimal.NewFromInt(1)) {
		streak = decimal.NewFromInt(1)
	}
	wager := decimal.NewFromInt(int64(bet))

	var amount decimal.Decimal
	switch o.Kind {
	case domain.MatchPair:
		amount = wager.Mul(c.pairMultiplier).Mul(streak)
	case domain.MatchTriple, domain.MatchJackpot:
		bonus := decimal.NewFromInt(1).Add(c.wildcardBonus.Mul(decimal.NewFromInt(int64(o.WildcardCount))))
		amount = wager.Mul(decimal.NewFromFloat(o.Base.PayoutMultiplier)).Mul(bonus).Mul(streak)
	}

	payout := domain.Money(amount.Floor().IntPart())
	if payout < 0 {
		payout = 0
	}

	if o.Kind == domain.MatchJackpot {
		if jackpot > 0 {
			payout += jackpot
		}
		return payout, true
	}
	return payout, false
}
