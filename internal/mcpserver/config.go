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
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration

	// Input limits.
	MaxSpecs       int
	MaxInlineBytes int64

	// Output defaults.
	DefaultFormat string
	CompareLimit  int
	MaxLimit      int

	// URL inputs.
	AllowPrivateIPs bool
	FetchTimeout    time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASPATHTREE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:    envBool("OASPATHTREE_CACHE_ENABLED", true),
		CacheMaxSize:    envInt("OASPATHTREE_CACHE_MAX_SIZE", 10),
		CacheTTL:        envDuration("OASPATHTREE_CACHE_TTL", 15*time.Minute),
		MaxSpecs:        envInt("OASPATHTREE_MAX_SPECS", 10),
		MaxInlineBytes:  int64(envInt("OASPATHTREE_MAX_INLINE_BYTES", 10*1024*1024)),
		DefaultFormat:   envFormat("OASPATHTREE_DEFAULT_FORMAT", formatMermaid),
		CompareLimit:    envInt("OASPATHTREE_COMPARE_LIMIT", 100),
		MaxLimit:        envInt("OASPATHTREE_MAX_LIMIT", 1000),
		AllowPrivateIPs: envBool("OASPATHTREE_ALLOW_PRIVATE_IPS", false),
		FetchTimeout:    envDuration("OASPATHTREE_FETCH_TIMEOUT", 30*time.Second),
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

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !validFormat(v) {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

// Diagram formats accepted by the path_tree tool.
const (
	formatMermaid = "mermaid"
	formatDOT     = "dot"
	formatSVG     = "svg"
)

func validFormat(f string) bool {
	switch f {
	case formatMermaid, formatDOT, formatSVG:
		return true
	}
	return false
}
