package bonus

// CycleDays is the length of the login streak cycle
const CycleDays = 7

// Log messages
const (
	LogMsgBonusClaimed        = "Daily bonus claimed"
	LogMsgBonusAlreadyClaimed = "Daily bonus already claimed today"
)

// Error context strings for wrapping
const (
	ErrContextFailedToReadStreak  = "failed to read login streak"
	ErrContextFailedToWriteStreak = "failed to save login streak"
	ErrContextFailedToCredit      = "failed to credit daily bonus"
)
