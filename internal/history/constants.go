package history

import "time"

// Cache sizing defaults
const (
	DefaultMaxUsers = 10000
	DefaultTTL      = 24 * time.Hour
)

// Log messages
const (
	LogMsgFailedToDecodeSpin = "Failed to decode spin payload for history"
)

// ErrMsgDecodeSpinFailed wraps payload decode failures
const ErrMsgDecodeSpinFailed = "failed to decode spin completed payload: %w"
