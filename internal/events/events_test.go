// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_interfaces.go -source=./interfaces.go

func TestPublisherPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := NewMockConnInterface(ctrl)
	publisher := NewPublisher(mockConn, "erp", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	var sent []byte
	mockConn.EXPECT().Publish("erp.tenant-1.lead.converted", gomock.Any()).DoAndReturn(
		func(_ string, data []byte) error {
			sent = data
			return nil
		},
	)

	if err := publisher.Publish(context.Background(), "tenant-1", LEAD_CONVERTED, map[string]string{"lead_id": "lead-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope struct {
		ID       string            `json:"id"`
		Event    string            `json:"event"`
		TenantID string            `json:"organization_id"`
		Data     map[string]string `json:"data"`
	}
	if err := json.Unmarshal(sent, &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}

	if envelope.ID == "" || envelope.Event != LEAD_CONVERTED || envelope.TenantID != "tenant-1" || envelope.Data["lead_id"] != "lead-1" {
		t.Errorf("unexpected envelope %+v", envelope)
	}
}

func TestPublisherPublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConn := NewMockConnInterface(ctrl)
	publisher := NewPublisher(mockConn, "erp", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	connErr := errors.New("nats: connection closed")
	mockConn.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(connErr)

	if err := publisher.Publish(context.Background(), "tenant-1", PAYROLL_GENERATED, nil); !errors.Is(err, connErr) {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestSubject(t *testing.T) {
	if s := Subject("erp", "t1", INVOICE_PAID); s != "erp.t1.invoice.paid" {
		t.Errorf("unexpected subject %s", s)
	}
}
