package achievements

// Log messages
const (
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgUnlockFailed        = "Failed to unlock achievement"
	LogMsgRecordFailed        = "Failed to record spin for achievements"
	LogMsgFailedToDecodeSpin  = "Failed to decode spin event for achievements"
)

// Error context strings for wrapping
const (
	ErrContextFailedToReadProgress = "failed to read achievement progress"
	ErrContextFailedToSaveProgress = "failed to save achievement progress"
	ErrContextFailedToCredit       = "failed to credit achievement reward"
	ErrContextFailedToUnlock       = "failed to record achievement unlock"
	ErrContextDecodeSpin           = "failed to decode spin payload"
)
