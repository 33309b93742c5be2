package stats

// Log messages
const (
	LogMsgStatsReset         = "Game statistics reset"
	LogMsgFailedToDecodeSpin = "Failed to decode spin payload for stats"
)

// ErrMsgDecodeSpinFailed wraps payload decode failures
const ErrMsgDecodeSpinFailed = "failed to decode spin completed payload: %w"
