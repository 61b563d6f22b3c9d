package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendBaseURL  string
	BackendTimeout  time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionTTL      time.Duration
	CORSOrigins     []string
	StockAdjust     bool
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment
// variables. A .env file in the working directory is loaded first when
// present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BackendBaseURL:  envOrDefault("BACKEND_URL", "http://localhost:3000"),
		BackendTimeout:  envDuration("BACKEND_TIMEOUT_SECONDS", 10*time.Second),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		RedisPassword:   envOrDefault("REDIS_PASSWORD", ""),
		RedisDB:         envInt("REDIS_DB", 0),
		SessionTTL:      envDuration("SESSION_TTL_SECONDS", 48*60*60*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		StockAdjust:     envBool("STOCK_ADJUST", false),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
