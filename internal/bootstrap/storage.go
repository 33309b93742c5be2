package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/bonus"
	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/database"
	"github.com/osse101/RewardReels_Go/internal/database/postgres"
	"github.com/osse101/RewardReels_Go/internal/eventlog"
	"github.com/osse101/RewardReels_Go/internal/jackpot"
	"github.com/osse101/RewardReels_Go/internal/ledger"
)

// Storage groups the persistence backends selected by config.
// Pool is nil for the in-memory backend.
type Storage struct {
	Pool             *pgxpool.Pool
	Ledger           ledger.Ledger
	Transactor       ledger.Transactor
	BonusStore       bonus.Store
	JackpotStore     jackpot.Store
	AchievementStore achievements.Store
	EventLog         eventlog.Repository
}

// InitializeStorage builds the memory backend, or connects to PostgreSQL,
// applies migrations and builds the repository-backed stores.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsesPostgres() {
		mem := ledger.NewMemoryLedger()
		slog.Info(LogMsgStorageInitialized, "backend", config.StorageMemory)
		return &Storage{
			Ledger:           mem,
			Transactor:       mem,
			BonusStore:       bonus.NewMemoryStore(),
			JackpotStore:     jackpot.NewMemoryStore(),
			AchievementStore: achievements.NewMemoryStore(),
			EventLog:         eventlog.NewMemoryRepository(eventlog.DefaultMemoryCapacity),
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	tx, err := postgres.NewTransactor(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedTransactor, err)
	}

	slog.Info(LogMsgStorageInitialized, "backend", config.StoragePostgres, "db_host", cfg.DBHost)
	return &Storage{
		Pool:             pool,
		Ledger:           postgres.NewLedgerRepository(pool),
		Transactor:       tx,
		BonusStore:       postgres.NewLoginStreakRepository(pool),
		JackpotStore:     postgres.NewJackpotRepository(pool),
		AchievementStore: postgres.NewAchievementRepository(pool),
		EventLog:         postgres.NewEventLogRepository(pool),
	}, nil
}

// DBPool returns the pool for readiness checks, or nil without a database
func (s *Storage) DBPool() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the database pool if there is one
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
