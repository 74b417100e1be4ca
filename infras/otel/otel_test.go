package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tzform/config"
	"tzform/infras/otel"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "tzform-test"

	tracer, cleanup := otel.New(cfg)
	defer cleanup()

	ctx, scope := tracer.NewScope(context.Background(), "handler", "handler.Form")
	defer scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())

	assert.NotPanics(t, func() {
		scope.SetAttribute("zone", "Europe/Berlin")
		scope.SetAttribute("iterations", 3)
		scope.SetAttribute("instant", int64(1_700_000_000_000))
		scope.SetAttributes(map[string]any{"gap": true, "zones": []string{"UTC"}})
		scope.AddEvent("resolved")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("unknown zone"))
	})
}

func TestScope_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "service.form.Submit")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"zone":       "America/New_York",
		"iterations": 2,
		"gap":        true,
		"instant":    time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC),
		"wait":       1500 * time.Millisecond,
		"cause":      errors.New("nonexistent local time"),
	})
	scope.TraceError(errors.New("unknown zone"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, "America/New_York", got["zone"].AsString())
	assert.Equal(t, int64(2), got["iterations"].AsInt64())
	assert.True(t, got["gap"].AsBool())
	assert.Equal(t, "2025-03-09T07:30:00Z", got["instant"].AsString())
	assert.Equal(t, int64(1500), got["wait.ms"].AsInt64())
	assert.Equal(t, "nonexistent local time", got["cause"].AsString())

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "unknown zone", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
