// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
)

type PublisherInterface interface {
	// Publish emits event for the tenant, payload is encoded as json
	Publish(ctx context.Context, tenantID, event string, payload any) error
	Close()
}

// ConnInterface is the subset of *nats.Conn used by the publisher.
type ConnInterface interface {
	Publish(subject string, data []byte) error
	Drain() error
}
