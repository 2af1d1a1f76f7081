// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/erp-service/internal/types"
)

// Entity names a tenant scoped table that can be counted.
type Entity string

const (
	EntityCustomers      Entity = "customers"
	EntityEmployees      Entity = "employees"
	EntityPurchaseOrders Entity = "purchase_orders"
	EntityProjects       Entity = "projects"
	EntityInvoices       Entity = "invoices"
	EntityLeads          Entity = "leads"
)

func (e Entity) valid() bool {
	switch e {
	case EntityCustomers, EntityEmployees, EntityPurchaseOrders, EntityProjects, EntityInvoices, EntityLeads:
		return true
	}
	return false
}

func (s *Storage) CountRecords(ctx context.Context, tenantID string, entity Entity) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRecords")
	defer span.End()

	if !entity.valid() {
		return 0, fmt.Errorf("cannot count unknown entity %q", entity)
	}

	var n int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(string(entity)).
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", entity, err)
	}

	return n, nil
}

func (s *Storage) CountLeadsByStatus(ctx context.Context, tenantID string) ([]*types.StatusCount, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLeadsByStatus")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("status", "COUNT(*)").
		From("leads").
		Where(sq.Eq{"tenant_id": tenantID}).
		GroupBy("status").
		OrderBy("status").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}

	return collect(rows, func(row sq.RowScanner) (*types.StatusCount, error) {
		var c types.StatusCount
		if err := row.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		return &c, nil
	})
}

// stockByWarehouseQuery sums stock per warehouse, warehouses without stock report zero.
func (s *Storage) stockByWarehouseQuery(ctx context.Context, tenantID string, limit uint64) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select("w.id", "w.name", "COALESCE(SUM(sl.quantity), 0) AS total_quantity").
		From("warehouses w").
		LeftJoin("stock_levels sl ON sl.warehouse_id = w.id").
		Where(sq.Eq{"w.tenant_id": tenantID}).
		GroupBy("w.id", "w.name").
		OrderBy("total_quantity DESC", "w.name").
		Limit(limit)
}

func (s *Storage) StockByWarehouse(ctx context.Context, tenantID string, limit uint64) ([]*types.WarehouseStock, error) {
	ctx, span := s.tracer.Start(ctx, "storage.StockByWarehouse")
	defer span.End()

	rows, err := s.stockByWarehouseQuery(ctx, tenantID, limit).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stock by warehouse: %w", err)
	}

	return collect(rows, func(row sq.RowScanner) (*types.WarehouseStock, error) {
		var w types.WarehouseStock
		if err := row.Scan(&w.WarehouseID, &w.WarehouseName, &w.TotalQuantity); err != nil {
			return nil, err
		}
		return &w, nil
	})
}
