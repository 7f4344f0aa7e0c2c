package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"

	// Websocket input limiter
	InputRatePerSecond int
	InputBurst         int
}

// GameConfig holds game-related configuration
type GameConfig struct {
	RoundSeconds       int
	MaxTimeouts        int
	HintPenaltySeconds int
	MinWordLength      int
	TickInterval       time.Duration
	SessionIdleTimeout time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables with defaults.
// A .env file in the working directory, when present, is applied first;
// variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			Host:               getEnv("HOST", "0.0.0.0"),
			Env:                getEnv("ENV", "development"),
			InputRatePerSecond: getEnvInt("INPUT_RATE_PER_SECOND", 20),
			InputBurst:         getEnvInt("INPUT_BURST", 40),
		},
		Game: GameConfig{
			RoundSeconds:       getEnvInt("ROUND_SECONDS", 60),
			MaxTimeouts:        getEnvInt("MAX_TIMEOUTS", 3),
			HintPenaltySeconds: getEnvInt("HINT_PENALTY_SECONDS", 10),
			MinWordLength:      getEnvInt("MIN_WORD_LENGTH", 3),
			TickInterval:       time.Duration(getEnvInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,
			SessionIdleTimeout: time.Duration(getEnvInt("SESSION_IDLE_TIMEOUT_MINUTES", 120)) * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as a positive integer or a
// default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
