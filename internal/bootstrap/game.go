package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/autoplay"
	"github.com/osse101/RewardReels_Go/internal/bonus"
	"github.com/osse101/RewardReels_Go/internal/concurrency"
	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/eventlog"
	"github.com/osse101/RewardReels_Go/internal/history"
	"github.com/osse101/RewardReels_Go/internal/jackpot"
	"github.com/osse101/RewardReels_Go/internal/scheduler"
	"github.com/osse101/RewardReels_Go/internal/slots"
	"github.com/osse101/RewardReels_Go/internal/sse"
	"github.com/osse101/RewardReels_Go/internal/stats"
	"github.com/osse101/RewardReels_Go/internal/streak"
	"github.com/osse101/RewardReels_Go/internal/worker"
)

// Game holds the assembled game services and their background machinery
type Game struct {
	Config       config.GameConfig
	Jackpot      *jackpot.Accumulator
	Slots        slots.Service
	Autoplay     *autoplay.Controller
	Bonus        bonus.Service
	Achievements achievements.Service
	Stats        stats.Service
	History      history.Service
	EventLog     eventlog.Service
	Stream       *sse.Hub
	Workers      *worker.Pool
	Scheduler    *scheduler.Scheduler
}

// InitializeGame builds every game component from the paytable, restores the
// jackpot from storage and schedules the accrual, persistence and event log
// cleanup jobs.
func InitializeGame(ctx context.Context, cfg *config.Config, gameCfg config.GameConfig, store *Storage, publisher *event.ResilientPublisher) (*Game, error) {
	selector, err := slots.NewSelector(gameCfg.Symbols, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildSelector, err)
	}

	table, err := streak.NewTable(gameCfg.StreakTiers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildStreaks, err)
	}

	acc, err := jackpot.NewAccumulator(jackpot.Config{
		TableID:          gameCfg.Jackpot.TableID,
		Base:             gameCfg.Jackpot.Base,
		Max:              gameCfg.Jackpot.Max,
		AccrualPerSecond: gameCfg.Jackpot.AccrualPerSecond,
		ContributionRate: gameCfg.Jackpot.ContributionRate,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildJackpot, err)
	}
	if err := jackpot.Restore(ctx, acc, store.JackpotStore); err != nil {
		acc.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRestoreJackpot, err)
	}

	slotsSvc := slots.NewService(
		slots.Config{
			MinBet:         gameCfg.MinBet,
			MaxBet:         gameCfg.MaxBet,
			PairMultiplier: gameCfg.PairMultiplier,
			WildcardBonus:  &gameCfg.WildcardBonus,
			Maintenance:    cfg.MaintenanceMode,
		},
		selector,
		streak.NewRegistry(table),
		acc,
		store.Ledger,
		store.Transactor,
		concurrency.NewLockManager(),
		publisher,
	)

	controller := autoplay.NewController(slotsSvc, store.Ledger, publisher, autoplay.Limits{
		MinBet:       gameCfg.MinBet,
		MaxBet:       gameCfg.MaxBet,
		DefaultSpins: gameCfg.Autoplay.DefaultSpins,
		MaxSpins:     gameCfg.Autoplay.MaxSpins,
	}, cfg.AutoplayCadence)

	bonusSvc, err := bonus.NewService(gameCfg.DailyBonus, cfg.Location(), store.BonusStore, store.Ledger, store.Transactor, publisher)
	if err != nil {
		acc.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildBonus, err)
	}

	achievementSvc, err := achievements.NewService(gameCfg.Achievements, store.AchievementStore, store.Ledger, store.Transactor, publisher)
	if err != nil {
		acc.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildAchievements, err)
	}

	eventLog := eventlog.NewService(store.EventLog)

	workers := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	workers.Start()
	sched := scheduler.New(workers)
	jobs := []struct {
		name     string
		interval time.Duration
		job      worker.Job
	}{
		{JobNameJackpotTick, cfg.JackpotTickInterval, jackpot.NewTickJob(acc)},
		{JobNameJackpotPersist, cfg.JackpotPersistInterval, jackpot.NewPersistJob(acc, store.JackpotStore)},
		{JobNameEventLogCleanup, cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(eventLog, cfg.EventLogRetention)},
	}
	for _, j := range jobs {
		if err := sched.Schedule(j.name, j.interval, j.job); err != nil {
			sched.Stop()
			workers.Stop()
			acc.Stop()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
		}
	}

	stream := sse.NewHub()
	stream.Start()

	slog.Info(LogMsgGameInitialized,
		"symbols", len(gameCfg.Symbols),
		"jackpot_table", acc.TableID(),
		"min_bet", gameCfg.MinBet,
		"max_bet", gameCfg.MaxBet)

	return &Game{
		Config:       gameCfg,
		Jackpot:      acc,
		Slots:        slotsSvc,
		Autoplay:     controller,
		Bonus:        bonusSvc,
		Achievements: achievementSvc,
		Stats:        stats.NewService(),
		History:      history.NewService(gameCfg.HistorySize, history.DefaultMaxUsers, history.DefaultTTL),
		EventLog:     eventLog,
		Stream:       stream,
		Workers:      workers,
		Scheduler:    sched,
	}, nil
}
