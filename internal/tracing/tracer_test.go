// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/canonical/erp-service/internal/logging"
)

func TestNoopTracerStart(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Fatal("noop span should not carry a valid span context")
	}
}

func TestNewConfig(t *testing.T) {
	logger := logging.NewNoopLogger()
	cfg := NewConfig(true, "otel:4317", "", logger)

	if !cfg.Enabled || cfg.OtelGRPCEndpoint != "otel:4317" || cfg.OtelHTTPEndpoint != "" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSpanName(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v0/leads/1/convert", nil)

	if got := spanName("", r); got != "POST /api/v0/leads/1/convert" {
		t.Fatalf("unexpected span name %q", got)
	}
}
