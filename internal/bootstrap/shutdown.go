package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/jackpot"
	"github.com/osse101/RewardReels_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Game               *Game
	Storage            *Storage
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// 1. Live streams, then the HTTP server (stop accepting new requests)
// 2. Autoplay sessions (finish in-flight cycles, mark sessions stopped)
// 3. Scheduled jobs and workers, then a final jackpot snapshot
// 4. Event publisher (flush pending events)
// 5. Storage
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	// open streams would hold Shutdown until its deadline
	if c.Game != nil && c.Game.Stream != nil {
		slog.Info(LogMsgClosingStreams)
		c.Game.Stream.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if err := c.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if g := c.Game; g != nil {
		slog.Info(LogMsgShuttingDownAutoplay)
		if err := g.Autoplay.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAutoplayShutdownFailed, "error", err)
		}

		g.Scheduler.Stop()
		g.Workers.Stop()

		if err := jackpot.NewPersistJob(g.Jackpot, c.Storage.JackpotStore).Process(ctx); err != nil {
			slog.Error(LogMsgFinalJackpotPersistFailed, "error", err)
		}
		g.Jackpot.Stop()
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	c.Storage.Close()
	slog.Info(LogMsgServerStopped)
}
