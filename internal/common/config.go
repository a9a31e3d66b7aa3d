package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Audit  AuditConfig
	Store  StoreConfig
	Cache  CacheConfig
	Ingest IngestConfig
}

// AuditConfig holds audit-policy related configuration
type AuditConfig struct {
	PolicyPath string // optional JSON policy override; defaults applied when empty
	Parallel   bool
}

// StoreConfig holds report persistence configuration
type StoreConfig struct {
	SQLitePath string
}

// CacheConfig holds extraction-cache configuration
type CacheConfig struct {
	RedisAddr string // empty disables redis; in-memory cache is used instead
	TTL       time.Duration
}

// IngestConfig holds statement-watcher configuration
type IngestConfig struct {
	Roots    []string
	Debounce time.Duration
	Workers  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Audit: AuditConfig{
			PolicyPath: getEnv("AUDIT_POLICY_PATH", ""),
			Parallel:   getEnvAsBool("AUDIT_PARALLEL", false),
		},
		Store: StoreConfig{
			SQLitePath: getEnv("REPORT_DB_PATH", "./loanaudit.db"),
		},
		Cache: CacheConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			TTL:       getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		},
		Ingest: IngestConfig{
			Roots:    getEnvAsList("WATCH_ROOTS", nil),
			Debounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			Workers:  getEnvAsInt("WATCH_WORKERS", 4),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration for the watcher daemon.
func (c *Config) Validate() error {
	if len(c.Ingest.Roots) == 0 {
		return NewProcessingError("WATCH_ROOTS is required", nil)
	}
	if c.Ingest.Workers <= 0 {
		return NewProcessingError("WATCH_WORKERS must be positive", nil)
	}
	return nil
}
