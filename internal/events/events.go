// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package events publishes domain events about committed work.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

const (
	LEAD_CONVERTED          = "lead.converted"
	PAYROLL_GENERATED       = "payroll.generated"
	PURCHASE_ORDER_RECEIVED = "purchase_order.received"
	INVOICE_PAID            = "invoice.paid"
)

// Envelope is the json document sent on the wire.
type Envelope struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	TenantID   string    `json:"organization_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Subject returns the subject of event for tenant: <prefix>.<tenant>.<event>.
func Subject(prefix, tenantID, event string) string {
	return fmt.Sprintf("%s.%s.%s", prefix, tenantID, event)
}

var _ PublisherInterface = (*Publisher)(nil)

type Publisher struct {
	conn   ConnInterface
	prefix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Publisher) Publish(ctx context.Context, tenantID, event string, payload any) error {
	_, span := p.tracer.Start(ctx, "events.Publisher.Publish")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	data, err := json.Marshal(
		Envelope{
			ID:         id.String(),
			Event:      event,
			TenantID:   tenantID,
			OccurredAt: time.Now().UTC(),
			Data:       payload,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %v", event, err)
	}

	subject := Subject(p.prefix, tenantID, event)
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Errorf("failed to publish %s: %v", subject, err)
		return err
	}

	p.logger.Debugf("published %s", subject)
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Errorf("failed to drain nats connection: %v", err)
	}
}

func NewPublisher(conn ConnInterface, prefix string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Publisher {
	p := new(Publisher)
	p.conn = conn
	p.prefix = prefix
	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// Connect dials the nats server at url.
func Connect(url string, logger logging.LoggerInterface) (*nats.Conn, error) {
	conn, err := nats.Connect(
		url,
		nats.Name("erp-service"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnf("nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Infof("nats reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %v", err)
	}

	return conn, nil
}
