package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock the payment flow reads. Order timestamps, claim
// times and gateway deadlines all come from it so tests can pin them.
type TimeProvider interface {
	// Now returns the current instant in UTC
	Now() time.Time
	// Since measures elapsed time, used for gateway latency
	Since(t time.Time) Duration
	// WithTimeout bounds a blocking call such as the remote create-order request
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
