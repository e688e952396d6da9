package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/macrofit/internal/logger"
)

// State backends for bot sessions
const (
	StateBackendMemory = "memory"
	StateBackendRedis  = "redis"
)

type Config struct {
	TelegramToken string
	StateBackend  string
	HTTP          HTTPConfig
	Redis         RedisConfig
	Logger        LoggerConfig
}

type HTTPConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
	RateLimit      float64 // requests per second, 0 disables limiting
	RateBurst      int
	GinMode        string
}

// Addr returns the listen address
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type RedisConfig struct {
	Host       string
	Port       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

// BotEnabled reports whether a Telegram token was configured
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads the configuration from the environment and reports every
// invalid value at once.
func Load() (*Config, error) {
	var errs []error

	parseInt := func(key, def string) int {
		raw := getEnvOrDefault(key, def)
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not an integer", key, raw))
		}
		return v
	}
	parseFloat := func(key, def string) float64 {
		raw := getEnvOrDefault(key, def)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			errs = append(errs, fmt.Errorf("%s: %q is not a non-negative number", key, raw))
		}
		return v
	}
	parseDuration := func(key, def string) time.Duration {
		raw := getEnvOrDefault(key, def)
		v, err := time.ParseDuration(raw)
		if err != nil || v <= 0 {
			errs = append(errs, fmt.Errorf("%s: %q is not a positive duration", key, raw))
		}
		return v
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		StateBackend:  strings.ToLower(getEnvOrDefault("STATE_BACKEND", StateBackendMemory)),
		HTTP: HTTPConfig{
			Host:           os.Getenv("HTTP_HOST"),
			Port:           getEnvOrDefault("HTTP_PORT", "8080"),
			AllowedOrigins: splitList(getEnvOrDefault("HTTP_ALLOWED_ORIGINS", "*")),
			RateLimit:      parseFloat("HTTP_RATE_LIMIT", "20"),
			RateBurst:      parseInt("HTTP_RATE_BURST", "40"),
			GinMode:        getEnvOrDefault("GIN_MODE", "release"),
		},
		Redis: RedisConfig{
			Host:       getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:       getEnvOrDefault("REDIS_PORT", "6379"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         parseInt("REDIS_DB", "0"),
			SessionTTL: parseDuration("SESSION_TTL", "24h"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if port, err := strconv.Atoi(cfg.HTTP.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT: %q is not a valid port", cfg.HTTP.Port))
	}
	if cfg.StateBackend != StateBackendMemory && cfg.StateBackend != StateBackendRedis {
		errs = append(errs, fmt.Errorf("STATE_BACKEND: %q must be %q or %q", cfg.StateBackend, StateBackendMemory, StateBackendRedis))
	}
	switch cfg.HTTP.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE: %q must be debug, release or test", cfg.HTTP.GinMode))
	}
	if cfg.Logger.Format != "json" && cfg.Logger.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT: %q must be json or text", cfg.Logger.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}
