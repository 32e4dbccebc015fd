package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Graph tool defaults.
	GraphLimit int
	MaxLimit   int

	// MaxInlineSize bounds the size of inline spec content in bytes.
	MaxInlineSize int64

	// Concurrency is passed to contract generation. Zero uses GOMAXPROCS.
	Concurrency int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OACONTRACT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OACONTRACT_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OACONTRACT_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OACONTRACT_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OACONTRACT_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OACONTRACT_CACHE_SWEEP_INTERVAL", 60*time.Second),
		GraphLimit:         envInt("OACONTRACT_GRAPH_LIMIT", 100),
		MaxLimit:           envInt("OACONTRACT_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("OACONTRACT_MAX_INLINE_SIZE", 10*1024*1024)),
		Concurrency:        envInt("OACONTRACT_CONCURRENCY", 0),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
