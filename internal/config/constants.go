package config

const (
	// Configuration file paths
	ConfigPathGame = "configs/game.yaml"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Environment variable names
const (
	EnvSchemaVersion          = "ENV_SCHEMA_VERSION"
	EnvPort                   = "PORT"
	EnvAPIKey                 = "API_KEY"
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvEnvironment            = "ENVIRONMENT"
	EnvStorage                = "STORAGE"
	EnvDBUser                 = "DB_USER"
	EnvDBPassword             = "DB_PASSWORD"
	EnvDBHost                 = "DB_HOST"
	EnvDBPort                 = "DB_PORT"
	EnvDBName                 = "DB_NAME"
	EnvDBMaxConns             = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime      = "DB_MAX_CONN_LIFETIME"
	EnvGameConfigPath         = "GAME_CONFIG_PATH"
	EnvJackpotTickInterval    = "JACKPOT_TICK_INTERVAL"
	EnvJackpotPersistInterval = "JACKPOT_PERSIST_INTERVAL"
	EnvAutoplayCadence        = "AUTOPLAY_CADENCE"
	EnvBonusTimezone          = "BONUS_TIMEZONE"
	EnvMaintenanceMode        = "MAINTENANCE_MODE"
	EnvCORSOrigins            = "CORS_ORIGINS"
	EnvWorkerCount            = "WORKER_COUNT"
	EnvTrustedProxies         = "TRUSTED_PROXIES"
	EnvLogDir                 = "LOG_DIR"
	EnvEventMaxRetries        = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay        = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath    = "EVENT_DEADLETTER_PATH"

	EnvEventLogRetention       = "EVENT_LOG_RETENTION"
	EnvEventLogCleanupInterval = "EVENT_LOG_CLEANUP_INTERVAL"

	EnvDiscordToken       = "DISCORD_TOKEN"
	EnvDiscordAppID       = "DISCORD_APP_ID"
	EnvDiscordGuild       = "DISCORD_GUILD_ID"
	EnvDiscordHealthPort  = "DISCORD_HEALTH_PORT"
	EnvDiscordForceUpdate = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvAPIURL             = "API_URL"
)
