package core

// LogLevel is the minimum severity a Logger emits
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logger every component writes through.
//
// Fields are flat key/value pairs. Callers put identifiers such as
// gateway_order_id, user_id and event_id in them, never key secrets,
// webhook secrets or signature values.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	// Error is reserved for failures an operator must look at, such as a
	// claimed order whose credits were not granted.
	Error(message string, fields map[string]any)

	// Flush writes buffered entries; call it before the process exits
	Flush() error
}
