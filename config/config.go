package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// DefaultMaxFileSize is the size ceiling for downloaded files (2 GiB).
const DefaultMaxFileSize = 2 << 30

// Config holds all configuration for the bot service
type Config struct {
	Telegram  TelegramConfig
	Downloads DownloadsConfig
	Logging   LoggingConfig
	Service   ServiceConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
}

// DownloadsConfig holds download worker configuration
type DownloadsConfig struct {
	Dir         string
	Workers     int64
	MaxFileSize int64
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config    *Config
	Telegram  *TelegramConfig
	Downloads *DownloadsConfig
	Logging   *LoggingConfig
	Service   *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:    cfg,
		Telegram:  &cfg.Telegram,
		Downloads: &cfg.Downloads,
		Logging:   &cfg.Logging,
		Service:   &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		Downloads: DownloadsConfig{
			Dir:         getEnv("DOWNLOADS_DIR", "downloads"),
			Workers:     getEnvInt64("DOWNLOAD_WORKERS", 2),
			MaxFileSize: getEnvInt64("MAX_FILE_SIZE", DefaultMaxFileSize),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "yt-media-bot"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.Downloads.Dir == "" {
		return fmt.Errorf("DOWNLOADS_DIR is required")
	}

	if c.Downloads.Workers < 1 {
		return fmt.Errorf("DOWNLOAD_WORKERS must be at least 1")
	}

	if c.Downloads.MaxFileSize < 1 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt64 gets an integer environment variable with default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
