package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64
)

// KeepaliveInterval is how often an idle stream gets a keepalive frame
const KeepaliveInterval = 30 * time.Second

// Stream event types
const (
	EventTypeConnected       = "connected"
	EventTypeKeepalive       = "keepalive"
	EventTypeWin             = "spin.win"
	EventTypeJackpotHit      = "jackpot.hit"
	EventTypeAutoplayStarted = "autoplay.started"
	EventTypeAutoplayStopped = "autoplay.stopped"
	EventTypeAchievement     = "achievement.unlocked"
)

// QueryParamTypes selects a comma separated subset of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgEventDropped       = "Stream broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgSubscriberReady    = "Live stream subscribed to game events"
	LogMsgDecodeFailed       = "Failed to decode event for live stream"
)

// ErrMsgStreamingUnsupported is returned when the writer cannot flush
const ErrMsgStreamingUnsupported = "streaming not supported"

// ErrMsgHubStopped is returned to clients connecting during shutdown
const ErrMsgHubStopped = "stream is shutting down"
