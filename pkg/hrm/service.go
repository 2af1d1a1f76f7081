// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	tx        TxInterface
	publisher events.PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.publisher = publisher

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
