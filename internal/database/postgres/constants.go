package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Table and column names
const (
	tableAccounts     = "accounts"
	tableLoginStreaks = "login_streaks"
	tableJackpotPools = "jackpot_pools"
	tableGameEvents   = "game_events"

	tableAchievementCounters = "achievement_counters"
	tableAchievementUnlocks  = "achievement_unlocks"

	colUserID           = "user_id"
	colBalance          = "balance"
	colUpdatedAt        = "updated_at"
	colLastLoginDate    = "last_login_date"
	colStreak           = "streak"
	colTableID          = "table_id"
	colCurrent          = "current"
	colBase             = "base"
	colMax              = "max"
	colAccrualPerSecond = "accrual_per_second"
	colContributionRate = "contribution_rate"
	colHitCount         = "hit_count"
	colLastHitAt        = "last_hit_at"
	colID               = "id"
	colEventType        = "event_type"
	colPayload          = "payload"
	colMetadata         = "metadata"
	colCreatedAt        = "created_at"
	colSpins            = "spins"
	colWins             = "wins"
	colJackpots         = "jackpots"
	colBestStreak       = "best_streak"
	colBiggestBet       = "biggest_bet"
	colBiggestPayout    = "biggest_payout"
	colAchievementID    = "achievement_id"
	colUnlockedAt       = "unlocked_at"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToCreateTxManager = "failed to create transaction manager"
	ErrMsgFailedToBuildQuery      = "failed to build query"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToInsertAccount = "failed to insert account"
	ErrMsgFailedToGetBalance    = "failed to get balance"
	ErrMsgFailedToDebit         = "failed to debit account"
	ErrMsgFailedToCredit        = "failed to credit account"
)

// Error Messages - Login Streak Operations
const (
	ErrMsgFailedToGetLoginStreak  = "failed to get login streak"
	ErrMsgFailedToSaveLoginStreak = "failed to save login streak"
)

// Error Messages - Jackpot Operations
const (
	ErrMsgFailedToLoadJackpot = "failed to load jackpot pool"
	ErrMsgFailedToSaveJackpot = "failed to save jackpot pool"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToInsertEvent  = "failed to insert game event"
	ErrMsgFailedToQueryEvents  = "failed to query game events"
	ErrMsgFailedToDeleteEvents = "failed to delete game events"
)

// Error Messages - Achievement Operations
const (
	ErrMsgFailedToGetAchievements  = "failed to get achievement progress"
	ErrMsgFailedToSaveAchievements = "failed to save achievement counters"
	ErrMsgFailedToUnlock           = "failed to record achievement unlock"
)
