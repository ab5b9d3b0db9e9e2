package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock.
// Timestamps are UTC so stored rows compare equal across hosts and drivers.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since measures elapsed wall time
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout.
// A non-positive timeout returns a cancelable context without deadline.
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}
