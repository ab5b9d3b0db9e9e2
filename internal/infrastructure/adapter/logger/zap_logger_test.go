package logger

import (
	"testing"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{"INFO", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{"error", core.LogLevelError},
		{"", core.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestZapLogger_SetLevel(t *testing.T) {
	t.Run("should change the effective level", func(t *testing.T) {
		l := NewZapLogger(Options{Level: "info", Format: "json"})

		l.SetLevel(core.LogLevelError)

		assert.Equal(t, core.LogLevelError, l.GetLevel())
	})
}

func TestMapToZapFields(t *testing.T) {
	t.Run("should redact sensitive keys", func(t *testing.T) {
		fields := mapToZapFields(map[string]any{
			"signature":        "abcdef",
			"gateway_order_id": "order_1",
		})

		enc := zapcore.NewMapObjectEncoder()
		for _, f := range fields {
			f.AddTo(enc)
		}

		assert.Equal(t, redacted, enc.Fields["signature"])
		assert.Equal(t, "order_1", enc.Fields["gateway_order_id"])
	})
}
