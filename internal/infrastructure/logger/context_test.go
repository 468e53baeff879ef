package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger() (*zap.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.DebugLevel)
	return zap.New(core), &buf
}

func TestWithContext(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)

	ctx := WithContext(context.Background(), log)

	assert.Equal(t, log, FromContext(ctx))
}

func TestFromContext_NotFound(t *testing.T) {
	log := FromContext(context.Background())

	// no-op logger, not nil
	assert.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info("test message")
		log.With(zap.String("key", "value")).Error("with field")
	})
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
	assert.NotNil(t, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	log, buf := newBufferLogger()

	ctx, enriched := WithRequestID(context.Background(), log, "req-12345")

	assert.Equal(t, "req-12345", GetRequestID(ctx))
	assert.Equal(t, enriched, FromContext(ctx))

	enriched.Info("branch added")
	assert.Contains(t, buf.String(), `"request_id":"req-12345"`)
}

func TestWithRequestID_Override(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	ctx, _ = WithRequestID(ctx, log, "first-id")
	assert.Equal(t, "first-id", GetRequestID(ctx))

	ctx, _ = WithRequestID(ctx, log, "second-id")
	assert.Equal(t, "second-id", GetRequestID(ctx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

// noopSpanContext returns a context carrying a span whose SpanContext is
// invalid, as produced by the noop tracer.
func noopSpanContext(t *testing.T) context.Context {
	t.Helper()
	tracer := noop.NewTracerProvider().Tracer("test-tracer")
	ctx, span := tracer.Start(context.Background(), "test-span")
	t.Cleanup(func() { span.End() })
	return ctx
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	// spans from the noop tracer carry invalid span contexts
	ctx := noopSpanContext(t)
	assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetSpanID(t *testing.T) {
	assert.Empty(t, GetSpanID(context.Background()))
	assert.Empty(t, GetSpanID(noopSpanContext(t)))
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	base := zap.NewNop()

	enriched := WithTraceContext(context.Background(), base)

	// no span means the logger comes back unchanged
	assert.Equal(t, base, enriched)
}

func TestWithTraceContext_InvalidSpanContext(t *testing.T) {
	base := zap.NewNop()

	enriched := WithTraceContext(noopSpanContext(t), base)
	assert.Equal(t, base, enriched)
}
