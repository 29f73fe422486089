package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasquery/internal/source"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Spec is the document location (file path or http(s) URL). The server
	// is bound to exactly one source for its whole lifetime.
	Spec string

	// HTTPTimeout bounds each spec fetch when Spec is a URL.
	HTTPTimeout time.Duration

	// AllowPrivateIPs disables the SSRF guard on URL fetches.
	AllowPrivateIPs bool

	// TagSample is how many tags the getting_started summary lists before
	// truncating to a remainder count.
	TagSample int

	// MaxSpecSize caps the size of fetched documents in bytes.
	MaxSpecSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASQUERY_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Spec:            os.Getenv("OASQUERY_SPEC"),
		HTTPTimeout:     envDuration("OASQUERY_HTTP_TIMEOUT", 30*time.Second),
		AllowPrivateIPs: envBool("OASQUERY_ALLOW_PRIVATE_IPS", false),
		TagSample:       envInt("OASQUERY_TAG_SAMPLE", 10),
		MaxSpecSize:     envInt64("OASQUERY_MAX_SPEC_SIZE", source.DefaultMaxSize),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
