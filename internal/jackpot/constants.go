package jackpot

// DefaultTableID names the pool when none is configured
const DefaultTableID = "main"

// Log messages
const (
	LogMsgJackpotClaimed   = "Jackpot claimed"
	LogMsgJackpotRestored  = "Jackpot claim restored"
	LogMsgJackpotSeeded    = "Jackpot restored from store"
	LogMsgJackpotPersisted = "Jackpot persisted"
)

// Error context strings for wrapping
const (
	ErrContextFailedToLoad = "failed to load jackpot snapshot"
	ErrContextFailedToSave = "failed to save jackpot snapshot"
)
