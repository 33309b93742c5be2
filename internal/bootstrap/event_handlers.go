package bootstrap

import (
	"log/slog"

	"github.com/osse101/RewardReels_Go/internal/achievements"
	"github.com/osse101/RewardReels_Go/internal/event"
	"github.com/osse101/RewardReels_Go/internal/eventlog"
	"github.com/osse101/RewardReels_Go/internal/history"
	"github.com/osse101/RewardReels_Go/internal/metrics"
	"github.com/osse101/RewardReels_Go/internal/sse"
	"github.com/osse101/RewardReels_Go/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	StatsService   stats.Service
	HistoryService history.Service
	Achievements   achievements.Service
	EventLog       eventlog.Service
	Stream         *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector, the stats and
// history projections, achievements, the audit log and the live stream to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	slog.Info(LogMsgStatsHandlerRegistered)

	history.NewEventHandler(deps.HistoryService).Register(deps.EventBus)
	slog.Info(LogMsgHistoryHandlerRegistered)

	if deps.Achievements != nil {
		achievements.NewEventHandler(deps.Achievements).Register(deps.EventBus)
		slog.Info(LogMsgAchievementsRegistered)
	}

	if deps.EventLog != nil {
		deps.EventLog.Register(deps.EventBus)
		slog.Info(LogMsgEventLogRegistered)
	}

	if deps.Stream != nil {
		sse.NewSubscriber(deps.Stream).Register(deps.EventBus)
		slog.Info(LogMsgStreamRegistered)
	}
}
