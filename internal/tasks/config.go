package tasks

import (
	"time"

	"github.com/mrlokans/library/internal/config"
)

// Config holds configuration for the task queue system.
type Config struct {
	// Workers is the number of concurrent task workers. Default: 2
	Workers int

	// MaxRetries is the maximum attempts for a failed export. Default: 3
	MaxRetries int

	// RetryDelay is the backoff duration between retries. Default: 1m
	RetryDelay time.Duration

	// TaskTimeout is the timeout for task execution. Default: 5m
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration

	// RetentionDuration is how long to keep completed tasks. Default: 24h
	RetentionDuration time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		MaxRetries:        3,
		RetryDelay:        1 * time.Minute,
		TaskTimeout:       5 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}

// FromConfig builds a Config from application settings, keeping defaults
// for values that are unset.
func FromConfig(cfg config.Tasks) Config {
	result := DefaultConfig()
	if cfg.Workers > 0 {
		result.Workers = cfg.Workers
	}
	if cfg.MaxRetries > 0 {
		result.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		result.RetryDelay = cfg.RetryDelay
	}
	if cfg.TaskTimeout > 0 {
		result.TaskTimeout = cfg.TaskTimeout
	}
	if cfg.ReleaseAfter > 0 {
		result.ReleaseAfter = cfg.ReleaseAfter
	}
	if cfg.CleanupInterval > 0 {
		result.CleanupInterval = cfg.CleanupInterval
	}
	if cfg.RetentionDuration > 0 {
		result.RetentionDuration = cfg.RetentionDuration
	}
	return result
}
