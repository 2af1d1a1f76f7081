// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"fmt"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

const topWarehouses uint64 = 10

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Overview gathers record counts, leads per status and the warehouses holding the most stock.
func (s *Service) Overview(ctx context.Context, tenantID string) (*types.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Overview")
	defer span.End()

	d := new(types.Dashboard)

	counts := []struct {
		entity storage.Entity
		dst    *int64
	}{
		{storage.EntityCustomers, &d.CustomersCount},
		{storage.EntityEmployees, &d.EmployeesCount},
		{storage.EntityPurchaseOrders, &d.PurchaseOrdersCount},
		{storage.EntityProjects, &d.ProjectsCount},
		{storage.EntityInvoices, &d.InvoicesCount},
		{storage.EntityLeads, &d.LeadsCount},
	}

	for _, c := range counts {
		n, err := s.storage.CountRecords(ctx, tenantID, c.entity)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	byStatus, err := s.storage.CountLeadsByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, c := range byStatus {
		if c.Status == "" {
			c.Status = "unknown"
		}
	}
	d.LeadsByStatus = byStatus

	if d.StockByWarehouse, err = s.storage.StockByWarehouse(ctx, tenantID, topWarehouses); err != nil {
		return nil, fmt.Errorf("failed to load stock overview: %w", err)
	}

	return d, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
