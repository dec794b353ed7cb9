// Package config provides configuration management for the battle
// simulator core.
//
// This package handles environment variable loading with type-safe parsing,
// applies secure production defaults, and performs extensive validation of
// all configuration values. It also loads BattleFormat ruleset descriptors
// from YAML files.
//
// # Loading Configuration
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Repository settings:
//   - DATA_DIR: catalogue/overlay JSON directory (default: "./data")
//   - BASE_GENERATION: generation the repository loads as its base layer (default: 9)
//   - LOG_LEVEL: logging verbosity (default: "info")
//   - TURN_TIMEOUT: ceiling on a single GenerateInstructions call (default: 5s)
//
// Rate limiting (guards repeated cold-start catalogue reads):
//   - RATE_LIMIT_ENABLED: enable rate limiting (default: false)
//   - RATE_LIMIT_REQUESTS_PER_SECOND: load operations per second (default: 5)
//   - RATE_LIMIT_BURST: burst allowance (default: 10)
//
// Retry policy (applied to the repository's JSON load path):
//   - RETRY_ENABLED: enable retry (default: true)
//   - RETRY_MAX_ATTEMPTS: maximum attempts, including the first (default: 3)
//   - RETRY_INITIAL_DELAY: first retry delay (default: 100ms)
//   - RETRY_MAX_DELAY: maximum retry delay (default: 30s)
//   - RETRY_BACKOFF_MULTIPLIER: backoff factor (default: 2.0)
//   - RETRY_JITTER_PERCENT: jitter percentage (default: 10)
//
// Metrics:
//   - METRICS_ENABLED: expose prometheus collectors (default: false)
//   - METRICS_PORT: metrics handler port (default: 9090)
//
// # Validation
//
// All configuration values are validated on load: the base generation must
// be in 1-9, the log level must be one of the recognized levels, the turn
// timeout must be at least 1ms, and rate-limit/retry/metrics values must be
// internally consistent when their feature is enabled.
//
// # Loading format descriptors
//
// LoadBattleFormat reads a YAML ruleset descriptor (name, generation,
// format_type, team_size, active_per_side, clauses, bans) and returns the
// format.BattleFormat it describes, retrying transient read failures via
// pkg/retry.
//
// # Retry Configuration
//
// GetRetryConfig returns a retry.RetryConfig that can be used directly
// with the retry package:
//
//	retryConfig := cfg.GetRetryConfig()
//	retrier := retry.NewRetrier(retryConfig)
package config
