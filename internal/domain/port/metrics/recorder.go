package metrics

import "time"

// Claim channels
const (
	ChannelClientCallback = "client_callback"
	ChannelWebhook        = "webhook"
	ChannelCancellation   = "cancellation"
	ChannelOperator       = "operator"
)

// Recorder receives business events for monitoring
type Recorder interface {
	OrderCreated(result string)
	Claim(channel, result string)
	CreditsGranted(credits int64)
	GatewayRequest(operation, outcome string, duration time.Duration)
	WebhookEvent(event, outcome string)
	SignatureFailure(channel string)
	Inconsistency()
}
