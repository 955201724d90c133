package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	RiotAPIKey string
	DBPath     string
	ServerPort string
	LogLevel   string

	// Upstream requests per second allowed per regional host.
	HostRateLimit float64
	HostRateBurst int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		DBPath:        getEnv("DB_PATH", "statshub.db"),
		ServerPort:    getEnv("SERVER_PORT", "3001"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HostRateLimit: getEnvFloat("HOST_RATE_LIMIT", 20),
		HostRateBurst: getEnvInt("HOST_RATE_BURST", 20),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Float64("host_rate_limit", cfg.HostRateLimit).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}
