package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
)

type Config struct {
	JWTSecret   string   // Required: HMAC secret shared with the auth provider (min 32 bytes)
	JWTIssuer   string   // Optional: expected iss claim, empty skips the check
	JWTAudience []string // Optional: expected aud values (default: authenticated)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./pulso.db)
	PermissionCacheTTL   time.Duration // Optional: role and permission cache lifetime (default: 5m)
	InvitationTTL        time.Duration // Optional: how long invitations stay acceptable (default: 7 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	MetricsEnabled       bool          // Serve /metrics (default: true)
}

// LoadConfig reads the environment, overlaid on a .env file when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		JWTSecret:            strings.TrimSpace(os.Getenv("PULSO_JWT_SECRET")),
		JWTIssuer:            os.Getenv("PULSO_JWT_ISSUER"),
		JWTAudience:          splitList(getEnvOrDefault("PULSO_JWT_AUDIENCE", jwtx.DefaultAudience)),
		DatabaseFile:         getEnvOrDefault("PULSO_DATABASE_FILE", "pulso.db"),
		PermissionCacheTTL:   getEnvDurationOrDefault("PERMISSION_CACHE_TTL", cache.DefaultPermissionTTL),
		InvitationTTL:        getEnvDurationOrDefault("INVITATION_TTL", service.DefaultInvitationTTL),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		MetricsEnabled:       getEnvBoolOrDefault("METRICS_ENABLED", true),
	}
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("PULSO_JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("PULSO_DATABASE_FILE must not be empty"))
	}
	return errors.Join(errs...)
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
