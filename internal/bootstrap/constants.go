package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup, the new one included
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting RewardReels"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized   = "Storage initialized"
	LogMsgMigrationsApplied    = "Database migrations applied"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to run migrations"
	ErrMsgFailedTransactor     = "failed to create transaction manager"
	ErrMsgFailedRestoreJackpot = "failed to restore jackpot"
)

// =============================================================================
// Game Assembly
// =============================================================================

const (
	// WorkerQueueSize is the background job queue capacity
	WorkerQueueSize = 64

	JobNameJackpotTick     = "jackpot_tick"
	JobNameJackpotPersist  = "jackpot_persist"
	JobNameEventLogCleanup = "event_log_cleanup"
)

const (
	LogMsgGameInitialized         = "Game initialized"
	ErrMsgFailedBuildSelector     = "failed to build symbol selector"
	ErrMsgFailedBuildStreaks      = "failed to build streak table"
	ErrMsgFailedBuildJackpot      = "failed to build jackpot accumulator"
	ErrMsgFailedBuildBonus        = "failed to build daily bonus service"
	ErrMsgFailedBuildAchievements = "failed to build achievement service"
	ErrMsgFailedScheduleJob       = "failed to schedule background job"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Stats handler registered"
	LogMsgHistoryHandlerRegistered   = "History handler registered"
	LogMsgAchievementsRegistered     = "Achievements handler registered"
	LogMsgEventLogRegistered         = "Event log registered"
	LogMsgStreamRegistered           = "Live stream registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgClosingStreams             = "Closing live streams..."
	LogMsgShuttingDownAutoplay       = "Stopping autoplay sessions..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgAutoplayShutdownFailed     = "Autoplay shutdown failed"
	LogMsgFinalJackpotPersistFailed  = "Final jackpot persist failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
