package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	SessionSecret string
	TemplatesDir  string
	StaticDir     string
	LogLevel      string
	GinMode       string

	SearchCacheSize int
	SearchCacheTTL  time.Duration
	VisitorCapacity int
	VisitorTTL      time.Duration
	FakePosts       int
}

// Load reads .env when present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, reading env vars from system")
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:     getEnv("STATIC_DIR", "./web/static"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		GinMode:       os.Getenv("GIN_MODE"),

		SearchCacheSize: getInt("SEARCH_CACHE_SIZE", 256),
		SearchCacheTTL:  getDuration("SEARCH_CACHE_TTL", time.Minute),
		VisitorCapacity: getInt("VISITOR_CAPACITY", 10000),
		VisitorTTL:      getDuration("VISITOR_TTL", 24*time.Hour),
		FakePosts:       getInt("FAKE_POSTS", 0),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", val, "default", def)
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", val, "default", def)
		return def
	}
	return d
}
