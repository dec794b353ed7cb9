package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(t *testing.T, config *Config)
	}{
		{
			name:        "default configuration",
			envVars:     map[string]string{},
			expectError: false,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "./data", config.DataDir)
				assert.Equal(t, 9, config.BaseGeneration)
				assert.Equal(t, "info", config.LogLevel)
				assert.Equal(t, 5*time.Second, config.TurnTimeout)
				assert.Equal(t, 3, config.RetryMaxAttempts)
				assert.False(t, config.MetricsEnabled)
			},
		},
		{
			name: "custom configuration from environment",
			envVars: map[string]string{
				"DATA_DIR":        "/custom/data",
				"BASE_GENERATION": "7",
				"LOG_LEVEL":       "debug",
				"TURN_TIMEOUT":    "2s",
				"METRICS_ENABLED": "true",
				"METRICS_PORT":    "9091",
			},
			expectError: false,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "/custom/data", config.DataDir)
				assert.Equal(t, 7, config.BaseGeneration)
				assert.Equal(t, "debug", config.LogLevel)
				assert.Equal(t, 2*time.Second, config.TurnTimeout)
				assert.True(t, config.MetricsEnabled)
				assert.Equal(t, 9091, config.MetricsPort)
			},
		},
		{
			name: "generation out of range",
			envVars: map[string]string{
				"BASE_GENERATION": "12",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
		},
		{
			name: "turn timeout too short",
			envVars: map[string]string{
				"TURN_TIMEOUT": "0s",
			},
			expectError: true,
		},
		{
			name: "rate limit enabled with zero burst",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED": "true",
				"RATE_LIMIT_BURST":   "0",
			},
			expectError: true,
		},
		{
			name: "retry enabled with max delay below initial",
			envVars: map[string]string{
				"RETRY_INITIAL_DELAY": "1s",
				"RETRY_MAX_DELAY":     "500ms",
			},
			expectError: true,
		},
		{
			name: "metrics enabled with out-of-range port",
			envVars: map[string]string{
				"METRICS_ENABLED": "true",
				"METRICS_PORT":    "99999",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			config, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, config)
			} else {
				require.NoError(t, err)
				require.NotNil(t, config)
				if tt.validate != nil {
					tt.validate(t, config)
				}
			}
		})
	}
}

func TestConfig_GetRetryConfig(t *testing.T) {
	cfg := &Config{
		RetryMaxAttempts:       5,
		RetryInitialDelay:      200 * time.Millisecond,
		RetryMaxDelay:          10 * time.Second,
		RetryBackoffMultiplier: 1.5,
		RetryJitterPercent:     20,
	}

	rc := cfg.GetRetryConfig()
	assert.Equal(t, 5, rc.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, rc.InitialDelay)
	assert.Equal(t, 10*time.Second, rc.MaxDelay)
	assert.Equal(t, 1.5, rc.BackoffMultiplier)
	assert.Equal(t, 20, rc.JitterMaxPercent)
}

func TestConfig_ApplyRepositoryRateLimit(t *testing.T) {
	t.Run("disabled clears any limit", func(t *testing.T) {
		cfg := &Config{RateLimitEnabled: false}
		assert.NotPanics(t, cfg.ApplyRepositoryRateLimit)
	})

	t.Run("enabled installs a limiter", func(t *testing.T) {
		cfg := &Config{RateLimitEnabled: true, RateLimitRequestsPerSecond: 5, RateLimitBurst: 10}
		assert.NotPanics(t, cfg.ApplyRepositoryRateLimit)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	clearTestEnv()

	t.Run("getEnvAsString", func(t *testing.T) {
		assert.Equal(t, "default", getEnvAsString("TEST_STRING", "default"))

		os.Setenv("TEST_STRING", "custom")
		defer os.Unsetenv("TEST_STRING")
		assert.Equal(t, "custom", getEnvAsString("TEST_STRING", "default"))
	})

	t.Run("getEnvAsInt", func(t *testing.T) {
		assert.Equal(t, 42, getEnvAsInt("TEST_INT", 42))

		os.Setenv("TEST_INT", "100")
		defer os.Unsetenv("TEST_INT")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT", 42))

		os.Setenv("TEST_INT_INVALID", "not-a-number")
		defer os.Unsetenv("TEST_INT_INVALID")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_INVALID", 42))
	})

	t.Run("getEnvAsBool", func(t *testing.T) {
		assert.Equal(t, true, getEnvAsBool("TEST_BOOL", true))

		testCases := []struct {
			value    string
			expected bool
		}{
			{"true", true},
			{"false", false},
			{"1", true},
			{"0", false},
			{"TRUE", true},
			{"FALSE", false},
		}

		for _, tc := range testCases {
			os.Setenv("TEST_BOOL", tc.value)
			assert.Equal(t, tc.expected, getEnvAsBool("TEST_BOOL", false), "value: %s", tc.value)
		}
		os.Unsetenv("TEST_BOOL")
	})

	t.Run("getEnvAsDuration", func(t *testing.T) {
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION", 5*time.Minute))

		os.Setenv("TEST_DURATION", "2h30m")
		defer os.Unsetenv("TEST_DURATION")
		assert.Equal(t, 2*time.Hour+30*time.Minute, getEnvAsDuration("TEST_DURATION", 5*time.Minute))
	})

	t.Run("getEnvAsFloat64", func(t *testing.T) {
		assert.Equal(t, 1.5, getEnvAsFloat64("TEST_FLOAT", 1.5))

		os.Setenv("TEST_FLOAT", "3.25")
		defer os.Unsetenv("TEST_FLOAT")
		assert.Equal(t, 3.25, getEnvAsFloat64("TEST_FLOAT", 1.5))
	})
}

// clearTestEnv removes all environment variables that might affect tests
func clearTestEnv() {
	testVars := []string{
		"DATA_DIR", "BASE_GENERATION", "LOG_LEVEL", "TURN_TIMEOUT",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS_PER_SECOND", "RATE_LIMIT_BURST",
		"RETRY_ENABLED", "RETRY_MAX_ATTEMPTS", "RETRY_INITIAL_DELAY", "RETRY_MAX_DELAY",
		"RETRY_BACKOFF_MULTIPLIER", "RETRY_JITTER_PERCENT",
		"METRICS_ENABLED", "METRICS_PORT",
		"TEST_STRING", "TEST_INT", "TEST_INT_INVALID", "TEST_BOOL",
		"TEST_DURATION", "TEST_FLOAT",
	}

	for _, v := range testVars {
		os.Unsetenv(v)
	}
}
