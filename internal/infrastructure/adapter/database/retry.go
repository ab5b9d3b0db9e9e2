package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnConnectionError retries operation while it fails with a connectivity
// error. Any other error is returned immediately.
func RetryOnConnectionError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	classifier := repository.NewErrorClassifier()
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}

	var err error
	attempt := 0
	for ; attempt < config.MaxAttempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !classifier.IsConnectionError(err) || attempt == config.MaxAttempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Database unavailable, retrying", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": config.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Error("Database operation failed", map[string]any{
		"attempts": attempt + 1,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes baseInterval * 2^attempt, capped, plus jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}

	return backoff
}
