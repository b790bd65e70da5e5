package contextkeys

import (
	"context"
	"testing"

	"github.com/apper-canvas/estate-view-connect/internal/core/port"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	noopLogger
	fields port.Fields
}

func (r *recordingLogger) WithFields(fields port.Fields) port.LoggerPort {
	r.fields = fields
	return r
}

func TestLoggerFromContext(t *testing.T) {
	assert.IsType(t, noopLogger{}, LoggerFromContext(context.Background()))

	logger := &recordingLogger{}
	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "trace-1")
	assert.Equal(t, "trace-1", TraceIDFromContext(ctx))
}
