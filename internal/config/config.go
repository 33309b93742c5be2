package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Storage selects the ledger/bonus/jackpot backend: "memory" or "postgres"
	Storage string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	GameConfigPath         string
	JackpotTickInterval    time.Duration
	JackpotPersistInterval time.Duration
	AutoplayCadence        time.Duration
	BonusTimezone          string
	MaintenanceMode        bool
	CORSOrigins            []string
	TrustedProxies         []string
	WorkerCount            int

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// EventLogRetention is how long audited game events are kept
	EventLogRetention       time.Duration
	EventLogCleanupInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv(EnvAPIKey, ""),
		LogLevel:    getEnv(EnvLogLevel, "info"),
		LogFormat:   getEnv(EnvLogFormat, "text"),
		LogDir:      getEnv(EnvLogDir, "logs"),
		ServiceName: getEnv(EnvServiceName, "reward-reels"),
		Version:     getEnv(EnvVersion, "dev"),
		Environment: getEnv(EnvEnvironment, "dev"),
		Storage:     strings.ToLower(getEnv(EnvStorage, StorageMemory)),

		DBUser:            getEnv(EnvDBUser, "postgres"),
		DBPassword:        getEnv(EnvDBPassword, "postgres"),
		DBHost:            getEnv(EnvDBHost, "localhost"),
		DBPort:            getEnv(EnvDBPort, "5432"),
		DBName:            getEnv(EnvDBName, "rewardreels"),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, 20),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, 30*time.Minute),

		GameConfigPath:         getEnv(EnvGameConfigPath, ConfigPathGame),
		JackpotTickInterval:    getEnvAsDuration(EnvJackpotTickInterval, time.Second),
		JackpotPersistInterval: getEnvAsDuration(EnvJackpotPersistInterval, 30*time.Second),
		AutoplayCadence:        getEnvAsDuration(EnvAutoplayCadence, 2*time.Second),
		BonusTimezone:          getEnv(EnvBonusTimezone, "UTC"),
		MaintenanceMode:        getEnvAsBool(EnvMaintenanceMode, false),
		CORSOrigins:            splitList(getEnv(EnvCORSOrigins, "*")),
		TrustedProxies:         splitList(getEnv(EnvTrustedProxies, "")),
		WorkerCount:            getEnvAsInt(EnvWorkerCount, 4),

		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, 0),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, 0),
		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, ""),

		EventLogRetention:       getEnvAsDuration(EnvEventLogRetention, 30*24*time.Hour),
		EventLogCleanupInterval: getEnvAsDuration(EnvEventLogCleanupInterval, time.Hour),
	}

	portStr := getEnv(EnvPort, "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StoragePostgres {
		return nil, fmt.Errorf("invalid STORAGE value %q: must be %q or %q", cfg.Storage, StorageMemory, StoragePostgres)
	}

	if _, err := time.LoadLocation(cfg.BonusTimezone); err != nil {
		return nil, fmt.Errorf("invalid BONUS_TIMEZONE value: %w", err)
	}

	if err := cfg.validateIntervals(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateIntervals rejects zero or negative periods for the background jobs
// and the autoplay cadence; each one drives a ticker or timer.
func (c *Config) validateIntervals() error {
	intervals := []struct {
		env   string
		value time.Duration
	}{
		{EnvJackpotTickInterval, c.JackpotTickInterval},
		{EnvJackpotPersistInterval, c.JackpotPersistInterval},
		{EnvAutoplayCadence, c.AutoplayCadence},
		{EnvEventLogRetention, c.EventLogRetention},
		{EnvEventLogCleanupInterval, c.EventLogCleanupInterval},
	}
	for _, iv := range intervals {
		if iv.value <= 0 {
			return fmt.Errorf("invalid %s value %s: must be positive", iv.env, iv.value)
		}
	}
	return nil
}

// Location returns the timezone used to decide daily bonus calendar days
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BonusTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UsesPostgres reports whether the postgres storage backend is selected
func (c *Config) UsesPostgres() bool {
	return c.Storage == StoragePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
