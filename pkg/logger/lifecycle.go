/* pkg/logger/lifecycle.go */

package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateTraceID returns a short 8-char trace ID.
func GenerateTraceID() string {
	return uuid.New().String()[:8]
}

// WithCommandLogging wraps fn with start and finish diagnostics.
func WithCommandLogging(name string, fn func() error) error {
	log := L()
	traceID := GenerateTraceID()
	start := time.Now()

	log.Debug("Command started", zap.String("command", name), zap.Time("start_time", start), zap.String("trace_id", traceID))

	err := fn()

	duration := time.Since(start)

	if err != nil {
		log.Error("Command failed", zap.String("command", name), zap.Duration("duration", duration), zap.Error(err), zap.String("trace_id", traceID))
	} else {
		log.Debug("Command completed", zap.String("command", name), zap.Duration("duration", duration), zap.String("trace_id", traceID))
	}

	return err
}
