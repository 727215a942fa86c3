package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by ATTUNE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("ATTUNE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// ContextStoreBackend returns which context store to run.
// Valid values: memory, redis, postgres. Defaults to "memory".
func ContextStoreBackend() string {
	b := os.Getenv("CONTEXT_STORE")
	if b == "" {
		return "memory"
	}
	return b
}

func RedisURL() string {
	return os.Getenv("REDIS_URL")
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// ContextTTL returns how long an idle session's context is retained.
// Defaults to 30 minutes.
func ContextTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("CONTEXT_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}

// ContextMaxSessions bounds the in-memory store's session count.
// Defaults to 10000.
func ContextMaxSessions() int {
	n, err := strconv.Atoi(os.Getenv("CONTEXT_MAX_SESSIONS"))
	if err != nil || n <= 0 {
		return 10000
	}
	return n
}

// APIKey returns the optional static bearer key. Auth is disabled when the
// key is empty.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
