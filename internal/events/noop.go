// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/canonical/erp-service/internal/logging"
)

// NoopPublisher only logs events, used when no broker is configured.
type NoopPublisher struct {
	logger logging.LoggerInterface
}

func (p *NoopPublisher) Publish(ctx context.Context, tenantID, event string, payload any) error {
	p.logger.Debugf("event %s for tenant %s not published, no broker configured", event, tenantID)
	return nil
}

func (p *NoopPublisher) Close() {}

func NewNoopPublisher(logger logging.LoggerInterface) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}
