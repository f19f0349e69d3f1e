package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the API
type Config struct {
	ServiceName string // e.g. "bws-api"
	Env         string // "dev", "uat", "prod"
	LogLevel    string // "debug", "info", etc.

	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration // 0 lets a response wait as long as bws runs
	HTTPIdleTimeout  time.Duration
	HTTPBodyLimit    int64
	ShutdownTimeout  time.Duration

	BwsBinary string // name or path of the bws executable

	// 0 means the command runs until it exits. When tightening it, keep
	// HTTPWriteTimeout above it or the client loses the response.
	BwsTimeout time.Duration
}

// Load reads configuration from environment variables and a .env file if present
func Load() *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		ServiceName:      GetEnv("SERVICE_NAME", "bws-api"),
		Env:              GetEnv("ENV", "prod"),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		HTTPAddr:         GetEnv("HTTP_ADDR", ":5000"),
		HTTPReadTimeout:  GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: GetEnvDuration("HTTP_WRITE_TIMEOUT", 0),
		HTTPIdleTimeout:  GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		HTTPBodyLimit:    int64(GetEnvInt("HTTP_BODY_LIMIT", 1<<20)),
		ShutdownTimeout:  GetEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		BwsBinary:        GetEnv("BWS_BINARY", "bws"),
		BwsTimeout:       GetEnvDuration("BWS_TIMEOUT", 0),
	}
}

// GetEnv returns the value of key, or def if unset or empty
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetEnvInt returns the value of key parsed as int, or def if unset or invalid
func GetEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

// GetEnvDuration returns the value of key parsed as time.Duration, or def if unset or invalid
func GetEnvDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}
