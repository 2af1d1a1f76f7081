// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_interfaces.go -source=./interfaces.go

func TestServiceOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counts := map[storage.Entity]int64{
		storage.EntityCustomers:      4,
		storage.EntityEmployees:      7,
		storage.EntityPurchaseOrders: 2,
		storage.EntityProjects:       5,
		storage.EntityInvoices:       9,
		storage.EntityLeads:          11,
	}

	mockStorage := NewMockStorageInterface(ctrl)
	for entity, n := range counts {
		mockStorage.EXPECT().CountRecords(gomock.Any(), "tenant-1", entity).Return(n, nil)
	}
	mockStorage.EXPECT().CountLeadsByStatus(gomock.Any(), "tenant-1").Return(
		[]*types.StatusCount{{Status: "", Count: 1}, {Status: "prospect", Count: 10}}, nil,
	)
	mockStorage.EXPECT().StockByWarehouse(gomock.Any(), "tenant-1", uint64(10)).Return(
		[]*types.WarehouseStock{{WarehouseID: "wh-1", WarehouseName: "Main", TotalQuantity: decimal.RequireFromString("12.50")}}, nil,
	)

	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	d, err := s.Overview(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := [...]int64{4, 7, 2, 5, 9, 11}
	got := [...]int64{d.CustomersCount, d.EmployeesCount, d.PurchaseOrdersCount, d.ProjectsCount, d.InvoicesCount, d.LeadsCount}
	if got != expected {
		t.Errorf("expected counts %v, got %v", expected, got)
	}
	if len(d.LeadsByStatus) != 2 || d.LeadsByStatus[0].Status != "unknown" {
		t.Errorf("unexpected leads by status %+v", d.LeadsByStatus)
	}
	if len(d.StockByWarehouse) != 1 || !d.StockByWarehouse[0].TotalQuantity.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("unexpected stock by warehouse %+v", d.StockByWarehouse)
	}
}

func TestServiceOverviewStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection reset")

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CountRecords(gomock.Any(), "tenant-1", storage.EntityCustomers).Return(int64(0), boom)

	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if _, err := s.Overview(context.Background(), "tenant-1"); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
