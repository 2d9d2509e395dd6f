package app

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/mgusdk"
	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/aussiebroadwan/mgu/pkg/slogx"
)

const (
	DefaultEndpoint = "https://sandbox.api.mygadgetumbrella.com"
	DefaultClientID = "APITEST001"

	defaultTokenWarmInterval = time.Minute
)

type Config struct {
	Endpoint          string        // Provider base URL (default: sandbox)
	ClientID          string        // OAuth2 client id (default: APITEST001)
	ClientSecret      string        // OAuth2 client secret, no default
	HTTPTimeout       time.Duration // Per-request provider timeout (default: 30s)
	TokenWarmInterval time.Duration // Background token refresh interval, 0 disables (default: 1m)

	NonceSecret   string        // Nonce signing secret, random per process when empty
	NonceTTL      time.Duration // Nonce lifetime (default: 12h)
	AllowedOrigin string        // Browser origin allowed by CORS, empty disables

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Endpoint:          getEnvOrDefault("MGU_API_ENDPOINT", DefaultEndpoint),
		ClientID:          getEnvOrDefault("MGU_API_CLIENT_ID", DefaultClientID),
		ClientSecret:      os.Getenv("MGU_API_CLIENT_SECRET"),
		HTTPTimeout:       getEnvDurationOrDefault("MGU_HTTP_TIMEOUT", mgusdk.DefaultTimeout),
		TokenWarmInterval: getEnvDurationOrDefault("MGU_TOKEN_WARM_INTERVAL", defaultTokenWarmInterval),

		NonceSecret:   os.Getenv("RELAY_NONCE_SECRET"),
		NonceTTL:      getEnvDurationOrDefault("RELAY_NONCE_TTL", noncex.DefaultTTL),
		AllowedOrigin: os.Getenv("RELAY_ALLOWED_ORIGIN"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Credentials returns the provider credentials held by the config.
func (c Config) Credentials() mgusdk.Credentials {
	return mgusdk.Credentials{
		BaseURL:      c.Endpoint,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
	}
}

// LogValue keeps secrets out of the startup log.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.String("client_id", c.ClientID),
		slog.String("client_secret", slogx.Mask(c.ClientSecret)),
		slog.Duration("http_timeout", c.HTTPTimeout),
		slog.Duration("token_warm_interval", c.TokenWarmInterval),
		slog.Bool("nonce_secret_set", c.NonceSecret != ""),
		slog.Duration("nonce_ttl", c.NonceTTL),
		slog.String("allowed_origin", c.AllowedOrigin),
		slog.String("env", c.Env),
		slog.Int("port", c.Port),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
