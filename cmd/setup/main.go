// Command setup creates the game database when it is missing and applies
// migrations. With -reset it drops the database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/database"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

const setupTimeout = 2 * time.Minute

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database before migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "reward-reels-setup", cfg.Version, cfg.Environment, false))

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	if err := run(ctx, cfg, *reset); err != nil {
		slog.Error("Setup failed", "database", cfg.DBName, "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "database", cfg.DBName)
}

func run(ctx context.Context, cfg *config.Config, reset bool) error {
	admin, err := pgx.Connect(ctx, fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort))
	if err != nil {
		return fmt.Errorf("connect to server: %w", err)
	}
	defer admin.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if reset {
		if _, err := admin.Exec(ctx,
			`SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`,
			cfg.DBName); err != nil {
			slog.Warn("Failed to terminate connections", "error", err)
		}
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
		slog.Info("Database dropped", "database", cfg.DBName)
	}

	var exists bool
	if err := admin.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if !exists {
		if _, err := admin.Exec(ctx, "CREATE DATABASE "+name); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.Info("Database created", "database", cfg.DBName)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}
