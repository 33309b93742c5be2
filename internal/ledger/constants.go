package ledger

// Log messages
const (
	LogMsgAccountOpened     = "Account opened"
	LogMsgTransactionRolled = "Ledger transaction rolled back"
)
