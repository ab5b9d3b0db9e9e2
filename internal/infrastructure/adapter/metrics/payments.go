package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	port "github.com/amirhossein-jamali/credit-engine/internal/domain/port/metrics"
)

func init() {
	register(
		ordersCreated,
		claims,
		creditsGranted,
		gatewayRequestDuration,
		webhookEvents,
		signatureFailures,
		inconsistencies,
	)
}

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Order creation attempts by result (created/invalid/gateway_error/inconsistent).",
		},
		[]string{"result"},
	)

	claims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_total",
			Help:      "Status claims by confirmation channel and result.",
		},
		[]string{"channel", "result"},
	)

	creditsGranted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_granted_total",
			Help:      "Paid credits granted to users.",
		},
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Payment gateway call latency by operation and outcome.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation", "outcome"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Authenticated webhook deliveries by event type and outcome.",
		},
		[]string{"event", "outcome"},
	)

	signatureFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_failures_total",
			Help:      "Confirmations rejected by signature verification.",
		},
		[]string{"channel"},
	)

	inconsistencies = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inconsistencies_total",
			Help:      "Detected divergences between gateway and local state. Each one needs manual reconciliation.",
		},
	)
)

// Recorder publishes payment events to Prometheus
type Recorder struct{}

var _ port.Recorder = (*Recorder)(nil)

// NewRecorder registers the payment collectors and returns a Recorder
func NewRecorder() *Recorder {
	MustRegister()
	return &Recorder{}
}

func (r *Recorder) OrderCreated(result string) {
	ordersCreated.WithLabelValues(norm(result)).Inc()
}

func (r *Recorder) Claim(channel, result string) {
	claims.WithLabelValues(norm(channel), norm(result)).Inc()
}

func (r *Recorder) CreditsGranted(credits int64) {
	if credits > 0 {
		creditsGranted.Add(float64(credits))
	}
}

func (r *Recorder) GatewayRequest(operation, outcome string, duration time.Duration) {
	gatewayRequestDuration.WithLabelValues(norm(operation), norm(outcome)).Observe(duration.Seconds())
}

func (r *Recorder) WebhookEvent(event, outcome string) {
	webhookEvents.WithLabelValues(norm(event), norm(outcome)).Inc()
}

func (r *Recorder) SignatureFailure(channel string) {
	signatureFailures.WithLabelValues(norm(channel)).Inc()
}

func (r *Recorder) Inconsistency() {
	inconsistencies.Inc()
}

func norm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}
