package metrics

import (
	"time"

	port "github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
)

// NoopRecorder discards every event. The operator CLI uses it.
type NoopRecorder struct{}

var _ port.Recorder = NoopRecorder{}

func (NoopRecorder) OrderCreated(string) {}
func (NoopRecorder) Claim(string, string) {}
func (NoopRecorder) CreditsGranted(int64) {}
func (NoopRecorder) GatewayRequest(string, string, time.Duration) {}
func (NoopRecorder) WebhookEvent(string, string) {}
func (NoopRecorder) SignatureFailure(string) {}
func (NoopRecorder) Inconsistency() {}
