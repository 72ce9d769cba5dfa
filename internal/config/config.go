// Package config loads pipeline settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Modes are named cognitive-budget presets. Each caps the mean absolute
// emotional load the budget selector may admit.
var Modes = map[string]float64{
	"calm":       0.3,
	"slow":       0.5,
	"overview":   0.6,
	"deep":       0.9,
	"monitoring": 1.0,
}

type Config struct {
	// Brief budget
	MaxReadTimeMin float64
	MaxArousalLoad float64
	Mode           string // calm | slow | overview | deep | monitoring

	// Fetching
	SourcesPath      string
	FetchTimeout     time.Duration
	FetchConcurrency int
	RetryAttempts    int
	RetryDelay       time.Duration

	// Scoring
	Language string

	// Dedup / grouping thresholds
	DedupThreshold float64
	GroupThreshold float64

	// Seen-state store
	SeenStorePath string
	SeenTTLHours  int

	// Delivery (optional)
	TelegramToken  string
	TelegramChatID string

	// App
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		MaxReadTimeMin:   15,
		MaxArousalLoad:   0.6,
		Mode:             "overview",
		SourcesPath:      "configs/sources.yaml",
		FetchTimeout:     10 * time.Second,
		FetchConcurrency: 8,
		RetryAttempts:    2,
		RetryDelay:       2 * time.Second,
		Language:         "en",
		DedupThreshold:   0.7,
		GroupThreshold:   0.20,
		SeenStorePath:    "seen_articles.json",
		SeenTTLHours:     72,
	}

	if v := os.Getenv("BRIEF_MODE"); v != "" {
		cfg.Mode = v
	}
	// The mode preset sets the load ceiling; MAX_AROUSAL_LOAD overrides it.
	if load, ok := Modes[cfg.Mode]; ok {
		cfg.MaxArousalLoad = load
	}

	if v := os.Getenv("MAX_READ_TIME_MIN"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 {
			cfg.MaxReadTimeMin = val
		}
	}
	if v := os.Getenv("MAX_AROUSAL_LOAD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 {
			cfg.MaxArousalLoad = val
		}
	}

	cfg.SourcesPath = getEnvOrDefault("SOURCES_PATH", cfg.SourcesPath)
	cfg.Language = getEnvOrDefault("BRIEF_LANGUAGE", cfg.Language)

	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("FETCH_CONCURRENCY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchConcurrency = val
		}
	}
	if v := os.Getenv("FETCH_RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.RetryAttempts = val
		}
	}
	if v := os.Getenv("FETCH_RETRY_DELAY_SEC"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}

	cfg.SeenStorePath = getEnvOrDefault("SEEN_STORE_PATH", cfg.SeenStorePath)
	cfg.SeenTTLHours = getEnvIntOrDefault("SEEN_TTL_HOURS", cfg.SeenTTLHours)

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if _, ok := Modes[c.Mode]; !ok {
		return fmt.Errorf("BRIEF_MODE must be one of calm, slow, overview, deep, monitoring")
	}
	if c.MaxReadTimeMin <= 0 {
		return fmt.Errorf("MAX_READ_TIME_MIN must be positive")
	}
	if c.MaxArousalLoad <= 0 || c.MaxArousalLoad > 1 {
		return fmt.Errorf("MAX_AROUSAL_LOAD must be in (0, 1]")
	}
	if c.TelegramToken != "" && c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}
