package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/glowtours/backoffice/internal/platform/telemetry"
)

func TestInitTracer_Stdout(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "glowtours-backoffice", "stdout", "")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	if otel.GetTracerProvider() != tp {
		t.Error("expected the global tracer provider to be registered")
	}
}

func TestInitTracer_OTLP(t *testing.T) {
	ctx := context.Background()

	// The OTLP/HTTP exporter connects lazily; no collector needs to be
	// listening for construction to succeed.
	tp, err := telemetry.InitTracer(ctx, "glowtours-backoffice", "otlp", "http://localhost:4318")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })
}

func TestInitTracer_UnknownExporterFallsBackToStdout(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "glowtours-backoffice", "jaeger", "")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })
}

func TestInitTracer_SetsPropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "glowtours-backoffice", "stdout", "")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	seen := map[string]bool{}
	for _, f := range otel.GetTextMapPropagator().Fields() {
		seen[f] = true
	}
	for _, field := range []string{"traceparent", "baggage"} {
		if !seen[field] {
			t.Errorf("propagator is missing the %q field", field)
		}
	}
}

func TestInitMeter_Stdout(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "glowtours-backoffice", "stdout", "")
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	if otel.GetMeterProvider() != mp {
		t.Error("expected the global meter provider to be registered")
	}
}

func TestInitMeter_OTLP(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "glowtours-backoffice", "otlp", "https://collector.glowtours.mv:4318")
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
}

func TestNewMetrics(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "glowtours-backoffice", "stdout", "")
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	if metrics.ServerRequestDuration == nil {
		t.Error("ServerRequestDuration was not registered")
	}
	if metrics.ServerRequestTotal == nil {
		t.Error("ServerRequestTotal was not registered")
	}
	if metrics.ClientRequestDuration == nil {
		t.Error("ClientRequestDuration was not registered")
	}
	if metrics.ClientRequestTotal == nil {
		t.Error("ClientRequestTotal was not registered")
	}
}
