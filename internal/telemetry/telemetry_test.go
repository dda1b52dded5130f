package telemetry

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestApplyHoneycombEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_MINESWEEPER_API_KEY", "secret")
	t.Setenv("HONEYCOMB_MINESWEEPER_DATASET", "")

	if !ApplyHoneycombEnv() {
		t.Fatal("ApplyHoneycombEnv() = false, want true with an API key set")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if !strings.Contains(headers, "x-honeycomb-team=secret") {
		t.Errorf("headers = %q, missing team", headers)
	}
	if !strings.Contains(headers, "x-honeycomb-dataset="+defaultDataset) {
		t.Errorf("headers = %q, missing default dataset", headers)
	}
}

func TestApplyHoneycombEnvWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_MINESWEEPER_API_KEY", "")

	if ApplyHoneycombEnv() {
		t.Error("ApplyHoneycombEnv() = true, want false without an API key")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "" {
		t.Errorf("headers = %q, want empty", got)
	}
}

func TestTracersStartSpans(t *testing.T) {
	ctx := context.Background()

	_, span := Tracer("test").Start(ctx, "test.span")
	span.End()

	_, span = NoopTracer().Start(ctx, "noop.span")
	if span.IsRecording() {
		t.Error("NoopTracer() span should not record")
	}
	span.End()
}

func TestGameAttributes(t *testing.T) {
	attrs := GameAttributes("abc", 9, 9, 10)
	if len(attrs) != 4 {
		t.Fatalf("len(GameAttributes()) = %d, want 4", len(attrs))
	}
	if attrs[0].Value.AsString() != "abc" {
		t.Errorf("game.id = %q, want %q", attrs[0].Value.AsString(), "abc")
	}
	if attrs[3].Value.AsInt64() != 10 {
		t.Errorf("game.mines = %d, want 10", attrs[3].Value.AsInt64())
	}
}
