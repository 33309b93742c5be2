package slots

import "github.com/osse101/RewardReels_Go/internal/domain"

// Evaluate classifies three drawn symbols.
//
// A set is triple-equivalent when every non-wildcard symbol is the same; its
// base is the first non-wildcard symbol, or the wildcard when all three are
// wildcards. Three literal jackpot symbols are a Jackpot. Otherwise any
// literal pair or any wildcard makes a Pair.
func Evaluate(reels [domain.ReelCount]domain.Symbol) domain.SpinOutcome {
	out := domain.SpinOutcome{Symbols: reels, Kind: domain.MatchNone}

	var base *domain.Symbol
	uniform := true
	for i := range reels {
		if reels[i].IsWildcard {
			out.WildcardCount++
			continue
		}
		if base == nil {
			base = &reels[i]
		} else if reels[i].Key != base.Key {
			uniform = false
		}
	}

	if uniform {
		if base == nil {
			out.Base = reels[0]
			out.Kind = domain.MatchTriple
			return out
		}
		out.Base = *base
		out.Kind = domain.MatchTriple
		if out.WildcardCount == 0 && base.IsJackpot {
			out.Kind = domain.MatchJackpot
		}
		return out
	}

	if out.WildcardCount > 0 ||
		reels[0].Key == reels[1].Key ||
		reels[1].Key == reels[2].Key ||
		reels[0].Key == reels[2].Key {
		out.Kind = domain.MatchPair
	}

	return out
}
