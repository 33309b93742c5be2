package slots

// Default payout tuning used when a Calculator is built from zero values
const (
	DefaultPairMultiplier = 1.5
	DefaultWildcardBonus  = 0.5
)

// Spin rejection reasons used as metric labels
const (
	RejectReasonInvalidBet   = "invalid_bet"
	RejectReasonConcurrent   = "concurrent_spin"
	RejectReasonMaintenance  = "maintenance"
	RejectReasonInsufficient = "insufficient_funds"
	RejectReasonError        = "error"
)

// Log messages
const (
	LogMsgSpinResolved           = "Spin resolved"
	LogMsgConcurrentSpinRejected = "Concurrent spin rejected"
	LogMsgSpinRejected           = "Spin rejected"
	LogMsgJackpotHit             = "Jackpot hit"
	LogMsgJackpotRestoreFailed   = "Failed to restore claimed jackpot after aborted spin"
	LogMsgJackpotContributeFail  = "Failed to contribute bet to jackpot"
	LogMsgMaintenanceChanged     = "Maintenance mode changed"
)

// Error context strings for wrapping
const (
	ErrContextSpinFailed       = "spin failed"
	ErrContextFailedToDebit    = "failed to debit bet"
	ErrContextFailedToCredit   = "failed to credit payout"
	ErrContextFailedToClaim    = "failed to claim jackpot"
	ErrContextFailedToSnapshot = "failed to read jackpot"
)

// Result message templates
const (
	MsgTemplateLoss    = "No match this time. You lost %d."
	MsgTemplatePair    = "Pair! You won %d."
	MsgTemplateTriple  = "Three of a kind! You won %d."
	MsgTemplateJackpot = "🎉 MEGA JACKPOT! You won %d! 🎉"
	MsgTemplateStreak  = " Streak x%d (%.1fx)."
)
