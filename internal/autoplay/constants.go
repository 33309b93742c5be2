package autoplay

import "time"

// DefaultCadence is the pause between two cycles of one session
const DefaultCadence = 2 * time.Second

// Log messages
const (
	LogMsgSessionStarted   = "Autoplay session started"
	LogMsgSessionStopped   = "Autoplay session stopped"
	LogMsgStopRequested    = "Autoplay stop requested"
	LogMsgCycleSkipped     = "Autoplay cycle skipped, spin already in flight"
	LogMsgCycleFailed      = "Autoplay cycle failed"
	LogMsgShuttingDown     = "Shutting down autoplay controller"
	LogMsgCancelledSession = "Cancelled pending autoplay cycle"
	LogMsgShutdownComplete = "Autoplay controller shutdown complete"
	LogMsgShutdownTimeout  = "Autoplay controller shutdown timeout"
)
