// Package config provides configuration management for the battle simulator
// core. It handles environment variable loading, validation, and provides
// secure defaults for production deployment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/retry"

	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration for loading the data repository and
// running the turn engine. Config is thread-safe; all field access should be
// done through getter methods when used concurrently, or by holding the
// mutex directly.
type Config struct {
	// mu provides thread-safe access to configuration fields when the Config
	// instance is shared across goroutines. Use RLock for reads and Lock for writes.
	mu sync.RWMutex `json:"-"`

	// DataDir is the directory containing the move/Pokémon/item/ability
	// catalogue and per-generation overlay JSON the repository loads from.
	DataDir string `json:"data_dir"`

	// BaseGeneration is the generation the repository loads as its base
	// layer before applying any per-generation overlays.
	BaseGeneration int `json:"base_generation"`

	// LogLevel controls the logging verbosity (debug, info, warn, error)
	LogLevel string `json:"log_level"`

	// TurnTimeout bounds how long a single GenerateInstructions call is
	// allowed to run before a caller gives up on it.
	TurnTimeout time.Duration `json:"turn_timeout"`

	// Rate limiting configuration, applied to the repository's cold-start
	// catalogue load to avoid hammering the filesystem when many workers
	// spin up a Repository concurrently.

	// RateLimitEnabled enables rate limiting on repository load operations
	RateLimitEnabled bool `json:"rate_limit_enabled"`

	// RateLimitRequestsPerSecond is the number of load operations allowed per second
	RateLimitRequestsPerSecond float64 `json:"rate_limit_requests_per_second"`

	// RateLimitBurst is the maximum number of load operations allowed in a burst
	RateLimitBurst int `json:"rate_limit_burst"`

	// Retry configuration for the repository's JSON load path

	// RetryEnabled enables retry logic for transient catalogue read failures
	RetryEnabled bool `json:"retry_enabled"`

	// RetryMaxAttempts is the maximum number of retry attempts (including initial attempt)
	RetryMaxAttempts int `json:"retry_max_attempts"`

	// RetryInitialDelay is the initial delay before the first retry
	RetryInitialDelay time.Duration `json:"retry_initial_delay"`

	// RetryMaxDelay is the maximum delay between retries
	RetryMaxDelay time.Duration `json:"retry_max_delay"`

	// RetryBackoffMultiplier is the multiplier for exponential backoff (typically 2.0)
	RetryBackoffMultiplier float64 `json:"retry_backoff_multiplier"`

	// RetryJitterPercent is the maximum percentage of jitter to add (0-100)
	RetryJitterPercent int `json:"retry_jitter_percent"`

	// Metrics configuration

	// MetricsEnabled enables the prometheus collectors in pkg/metrics
	MetricsEnabled bool `json:"metrics_enabled"`

	// MetricsPort is the port the metrics HTTP handler listens on
	MetricsPort int `json:"metrics_port"`
}

// Load creates a new Config instance by reading from environment variables
// and applying secure defaults. It validates all configuration values and
// returns an error if any required values are missing or invalid.
func Load() (*Config, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"package":  "config",
	}).Debug("entering Load")

	cfg := &Config{
		DataDir:        getEnvAsString("DATA_DIR", "./data"),
		BaseGeneration: getEnvAsInt("BASE_GENERATION", 9),
		LogLevel:       getEnvAsString("LOG_LEVEL", "info"),
		TurnTimeout:    getEnvAsDuration("TURN_TIMEOUT", 5*time.Second),

		RateLimitEnabled:           getEnvAsBool("RATE_LIMIT_ENABLED", false),
		RateLimitRequestsPerSecond: getEnvAsFloat64("RATE_LIMIT_REQUESTS_PER_SECOND", 5),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 10),

		RetryEnabled:           getEnvAsBool("RETRY_ENABLED", true),
		RetryMaxAttempts:       getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay:      getEnvAsDuration("RETRY_INITIAL_DELAY", 100*time.Millisecond),
		RetryMaxDelay:          getEnvAsDuration("RETRY_MAX_DELAY", 30*time.Second),
		RetryBackoffMultiplier: getEnvAsFloat64("RETRY_BACKOFF_MULTIPLIER", 2.0),
		RetryJitterPercent:     getEnvAsInt("RETRY_JITTER_PERCENT", 10),

		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", false),
		MetricsPort:    getEnvAsInt("METRICS_PORT", 9090),
	}

	logrus.WithFields(logrus.Fields{
		"function":        "Load",
		"package":         "config",
		"data_dir":        cfg.DataDir,
		"base_generation": cfg.BaseGeneration,
		"log_level":       cfg.LogLevel,
	}).Debug("configuration loaded, starting validation")

	if err := cfg.validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"package":  "config",
			"error":    err,
		}).Error("configuration validation failed")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":        "Load",
		"package":         "config",
		"data_dir":        cfg.DataDir,
		"base_generation": cfg.BaseGeneration,
	}).Debug("exiting Load - configuration successfully loaded and validated")

	return cfg, nil
}

// validate checks that all configuration values are valid and consistent.
func (c *Config) validate() error {
	if err := c.validateRepositorySettings(); err != nil {
		return err
	}
	if err := c.validateTimeouts(); err != nil {
		return err
	}
	if err := c.validateRateLimitConfig(); err != nil {
		return err
	}
	if err := c.validateRetryConfig(); err != nil {
		return err
	}
	if err := c.validateMetricsConfig(); err != nil {
		return err
	}
	return nil
}

// validateRepositorySettings checks the data directory, base generation, and
// log level configuration.
func (c *Config) validateRepositorySettings() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}

	if c.BaseGeneration < 1 || c.BaseGeneration > 9 {
		return fmt.Errorf("base generation must be between 1 and 9, got %d", c.BaseGeneration)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.LogLevel) == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("log level must be one of %v, got %s", validLogLevels, c.LogLevel)
	}

	return nil
}

// validateTimeouts ensures the turn timeout meets a minimum requirement.
func (c *Config) validateTimeouts() error {
	if c.TurnTimeout < time.Millisecond {
		return fmt.Errorf("turn timeout must be at least 1ms, got %v", c.TurnTimeout)
	}
	return nil
}

// validateRateLimitConfig ensures rate limiting parameters are valid when enabled.
func (c *Config) validateRateLimitConfig() error {
	if c.RateLimitEnabled {
		if c.RateLimitRequestsPerSecond <= 0 {
			return fmt.Errorf("rate limit requests per second must be greater than 0 when rate limiting is enabled")
		}
		if c.RateLimitBurst <= 0 {
			return fmt.Errorf("rate limit burst must be greater than 0 when rate limiting is enabled")
		}
	}
	return nil
}

// validateRetryConfig ensures retry policy parameters are valid when enabled.
func (c *Config) validateRetryConfig() error {
	if c.RetryEnabled {
		if c.RetryMaxAttempts < 1 {
			return fmt.Errorf("retry max attempts must be at least 1 when retry is enabled")
		}
		if c.RetryInitialDelay < 0 {
			return fmt.Errorf("retry initial delay must be non-negative when retry is enabled")
		}
		if c.RetryMaxDelay < c.RetryInitialDelay {
			return fmt.Errorf("retry max delay must be greater than or equal to initial delay when retry is enabled")
		}
		if c.RetryBackoffMultiplier <= 1.0 {
			return fmt.Errorf("retry backoff multiplier must be greater than 1.0 when retry is enabled")
		}
		if c.RetryJitterPercent < 0 || c.RetryJitterPercent > 100 {
			return fmt.Errorf("retry jitter percent must be between 0 and 100 when retry is enabled")
		}
	}
	return nil
}

// validateMetricsConfig ensures the metrics port is in range when enabled.
func (c *Config) validateMetricsConfig() error {
	if c.MetricsEnabled && (c.MetricsPort < 1 || c.MetricsPort > 65535) {
		return fmt.Errorf("metrics port must be between 1 and 65535, got %d", c.MetricsPort)
	}
	return nil
}

// GetRetryConfig creates a retry.RetryConfig from the current configuration.
// This converts the application-level retry settings into the format
// expected by the retry package. The returned configuration can be used
// directly with retry.NewRetrier() to create a retrier instance.
func (c *Config) GetRetryConfig() retry.RetryConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return retry.RetryConfig{
		MaxAttempts:       c.RetryMaxAttempts,
		InitialDelay:      c.RetryInitialDelay,
		MaxDelay:          c.RetryMaxDelay,
		BackoffMultiplier: c.RetryBackoffMultiplier,
		JitterMaxPercent:  c.RetryJitterPercent,
		RetryableErrors:   []error{},
	}
}

// ApplyRepositoryRateLimit installs this config's rate-limit settings onto
// the data repository's cold-start load path, or clears any existing limit
// when rate limiting is disabled.
func (c *Config) ApplyRepositoryRateLimit() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.RateLimitEnabled {
		repository.SetLoadRateLimit(0, 0)
		return
	}
	repository.SetLoadRateLimit(c.RateLimitRequestsPerSecond, c.RateLimitBurst)
}

// Helper functions for environment variable parsing with type safety and defaults

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
