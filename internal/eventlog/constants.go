package eventlog

import (
	"time"

	"github.com/osse101/RewardReels_Go/internal/event"
)

// LoggedEventTypes are the game events written to the audit log
var LoggedEventTypes = []event.Type{
	event.SpinCompleted,
	event.JackpotHit,
	event.AutoplayStarted,
	event.AutoplayStopped,
	event.BonusClaimed,
	event.AchievementUnlocked,
}

// Query limits
const (
	DefaultQueryLimit = 50
	MaxQueryLimit     = 500
)

// DefaultRetention is how long events are kept when no retention is configured
const DefaultRetention = 30 * 24 * time.Hour

// DefaultMemoryCapacity bounds the in-memory log
const DefaultMemoryCapacity = 10000

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgFailedToEncodePayload = "Failed to encode event payload"
	LogMsgFailedToLogEvent      = "Failed to log event"
	LogMsgEventLogged           = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Error context strings
const (
	ErrContextEncodePayload = "failed to encode event payload"
	ErrContextAppend        = "failed to append event"
)
