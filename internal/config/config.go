package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the domain fetcher
type Config struct {
	Lookup  LookupConfig
	Pacing  PacingConfig
	Suggest SuggestConfig
	Logging LoggingConfig
}

// LookupConfig holds availability lookup settings
type LookupConfig struct {
	Provider          string // RapidAPI provider name or "route53"
	HTTPTimeout       int    // seconds
	RequestsPerMinute int
}

// PacingConfig holds delays applied between lookups
type PacingConfig struct {
	MethodDelayMS int // between fallback strategies for one domain
	DomainDelayMS int // between domains in a batch
	SearchDelayMS int // between candidates during a search
}

// SuggestConfig holds name suggestion settings
type SuggestConfig struct {
	TLDs []string // nil means the built-in TLD list
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Lookup: LookupConfig{
			Provider:          getEnv("DOMAINFETCH_PROVIDER", "whoisapi"),
			HTTPTimeout:       getEnvInt("DOMAINFETCH_HTTP_TIMEOUT", 10),
			RequestsPerMinute: getEnvInt("DOMAINFETCH_REQUESTS_PER_MINUTE", 30),
		},
		Pacing: PacingConfig{
			MethodDelayMS: getEnvInt("DOMAINFETCH_METHOD_DELAY_MS", 500),
			DomainDelayMS: getEnvInt("DOMAINFETCH_DOMAIN_DELAY_MS", 1000),
			SearchDelayMS: getEnvInt("DOMAINFETCH_SEARCH_DELAY_MS", 800),
		},
		Suggest: SuggestConfig{
			TLDs: getEnvStringSlice("DOMAINFETCH_TLDS", nil),
		},
		Logging: LoggingConfig{
			Level:  getEnv("DOMAINFETCH_LOG_LEVEL", "warn"),
			Format: getEnv("DOMAINFETCH_LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
