package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/RewardReels_Go/internal/config"
	"github.com/osse101/RewardReels_Go/internal/discord"
	"github.com/osse101/RewardReels_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	ServiceName       = "reward-reels-discord"
)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthServer := discord.NewHTTPServer(getEnv(config.EnvDiscordHealthPort, DefaultHealthPort), bot)
	healthServer.Start()
	defer healthServer.Stop()

	for _, factory := range discord.AllCommands() {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}

	forceUpdate, _ := strconv.ParseBool(os.Getenv(config.EnvDiscordForceUpdate))
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered by an earlier run still work
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Discord bot stopped")
}

func setupLogger() {
	cfg := logger.NewConfig(
		getEnv(config.EnvLogLevel, "info"),
		getEnv(config.EnvLogFormat, "text"),
		ServiceName,
		getEnv(config.EnvVersion, "dev"),
		getEnv(config.EnvEnvironment, "dev"),
		false,
	)
	logger.InitLogger(cfg)
}

// loadConfig reads the bot configuration from the environment
func loadConfig() (discord.Config, error) {
	token := os.Getenv(config.EnvDiscordToken)
	if token == "" {
		return discord.Config{}, errors.New(config.EnvDiscordToken + " is required")
	}

	appID := os.Getenv(config.EnvDiscordAppID)
	if appID == "" {
		return discord.Config{}, errors.New(config.EnvDiscordAppID + " is required")
	}

	apiURL := getEnv(config.EnvAPIURL, DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv(config.EnvAPIKey)
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:   token,
		AppID:   appID,
		GuildID: os.Getenv(config.EnvDiscordGuild),
		APIURL:  apiURL,
		APIKey:  apiKey,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
