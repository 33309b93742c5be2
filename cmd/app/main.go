// @title RewardReels API
// @version 1.0
// @description Slot machine reward engine: spins, progressive jackpot, autoplay and daily bonuses.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/RewardReels_Go/internal/bootstrap"
	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	gameCfg, err := config.LoadGameConfig(cfg.GameConfigPath)
	if err != nil {
		slog.Error("Failed to load game configuration", "path", cfg.GameConfigPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	game, err := bootstrap.InitializeGame(ctx, cfg, gameCfg, store, publisher)
	if err != nil {
		store.Close()
		slog.Error("Failed to initialize game", "error", err)
		os.Exit(1)
	}

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       bus,
		StatsService:   game.Stats,
		HistoryService: game.History,
		Achievements:   game.Achievements,
		EventLog:       game.EventLog,
		Stream:         game.Stream,
	})

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			CORSOrigins:    cfg.CORSOrigins,
		},
		store.DBPool(),
		server.Services{
			Slots:           game.Slots,
			Autoplay:        game.Autoplay,
			Ledger:          store.Ledger,
			Bonus:           game.Bonus,
			Achievements:    game.Achievements,
			History:         game.History,
			Stats:           game.Stats,
			EventLog:        game.EventLog,
			Stream:          game.Stream,
			StartingBalance: gameCfg.StartingBalance,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Game:               game,
		Storage:            store,
		ResilientPublisher: publisher,
	})
}
