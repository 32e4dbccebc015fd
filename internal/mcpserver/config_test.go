package mcpserver

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv clears all OACONTRACT_* env vars to isolate tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OACONTRACT_CACHE_ENABLED", "OACONTRACT_CACHE_MAX_SIZE",
		"OACONTRACT_CACHE_FILE_TTL", "OACONTRACT_CACHE_CONTENT_TTL",
		"OACONTRACT_CACHE_SWEEP_INTERVAL", "OACONTRACT_GRAPH_LIMIT",
		"OACONTRACT_MAX_LIMIT", "OACONTRACT_MAX_INLINE_SIZE",
		"OACONTRACT_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.GraphLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Zero(t, c.Concurrency)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OACONTRACT_CACHE_ENABLED", "false")
	t.Setenv("OACONTRACT_CACHE_MAX_SIZE", "50")
	t.Setenv("OACONTRACT_CACHE_FILE_TTL", "30m")
	t.Setenv("OACONTRACT_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OACONTRACT_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OACONTRACT_GRAPH_LIMIT", "20")
	t.Setenv("OACONTRACT_MAX_LIMIT", "500")
	t.Setenv("OACONTRACT_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OACONTRACT_CONCURRENCY", "4")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 20, c.GraphLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, 4, c.Concurrency)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("OACONTRACT_CACHE_ENABLED", "maybe")
	t.Setenv("OACONTRACT_CONCURRENCY", "-2")
	t.Setenv("OACONTRACT_CACHE_FILE_TTL", "soon")

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Zero(t, c.Concurrency)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Contains(t, buf.String(), "key=OACONTRACT_CACHE_ENABLED")
	assert.Contains(t, buf.String(), "key=OACONTRACT_CONCURRENCY")
	assert.Contains(t, buf.String(), "key=OACONTRACT_CACHE_FILE_TTL")
}
