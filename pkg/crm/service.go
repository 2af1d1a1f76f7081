// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"strings"

	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

const (
	defaultCustomerPrefix = "C"
	customerPrefixLength  = 4
	projectNamePrefix     = "Project: "
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

// CustomerCodePrefix derives the customer code prefix of a converted lead from the first
// characters of its company name.
func CustomerCodePrefix(companyName string) string {
	runes := []rune(companyName)
	if len(runes) > customerPrefixLength {
		runes = runes[:customerPrefixLength]
	}

	prefix := strings.ToUpper(strings.ReplaceAll(string(runes), " ", ""))
	if prefix == "" {
		return defaultCustomerPrefix
	}

	return prefix
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
