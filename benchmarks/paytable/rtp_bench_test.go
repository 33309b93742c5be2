package paytable_bench

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/domain"
	"github.com/osse101/RewardReels_Go/internal/slots"
	"github.com/osse101/RewardReels_Go/internal/streak"
)

const betSize domain.Money = 100

// paytables are benchmarked side by side so benchstat can compare RTP drift
// between the shipped YAML and the built-in defaults.
func paytables(b *testing.B) map[string]config.GameConfig {
	b.Helper()
	shipped, err := config.LoadGameConfig(filepath.Join("..", "..", "configs", "game.yaml"))
	if err != nil {
		b.Fatalf("load shipped paytable: %v", err)
	}
	return map[string]config.GameConfig{
		"shipped": shipped,
		"default": config.DefaultGameConfig(),
	}
}

// BenchmarkRTP plays b.N simulated spins with a seeded RNG and reports the
// return-to-player percentage alongside the per-spin cost.
func BenchmarkRTP(b *testing.B) {
	for name, gc := range paytables(b) {
		b.Run(name, func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1, 2))
			sel, err := slots.NewSelector(gc.Symbols, rng.IntN)
			if err != nil {
				b.Fatal(err)
			}
			table, err := streak.NewTable(gc.StreakTiers)
			if err != nil {
				b.Fatal(err)
			}
			tracker := streak.NewTracker(table)
			calc := slots.NewCalculator(gc.PairMultiplier, gc.WildcardBonus)

			var wagered, paid domain.Money
			var jackpots int
			pool := gc.Jackpot.Base

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				outcome := slots.Evaluate(sel.DrawReels())
				next := tracker.OnSpinResult(outcome.Kind.IsWin())
				payout, hit := calc.Calculate(outcome, betSize, next.CurrentMultiplier, pool)

				wagered += betSize
				paid += payout
				if hit {
					jackpots++
					pool = gc.Jackpot.Base
				}
			}
			b.StopTimer()

			b.ReportMetric(float64(paid)/float64(wagered)*100, "rtp%")
			b.ReportMetric(float64(jackpots)/float64(b.N)*1e6, "jackpots/Mspin")
		})
	}
}

// BenchmarkDrawReels isolates the weighted selector
func BenchmarkDrawReels(b *testing.B) {
	sel, err := slots.NewSelector(config.DefaultGameConfig().Symbols, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sel.DrawReels()
	}
}
