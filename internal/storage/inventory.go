// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/types"
)

var warehouseColumns = []string{"id", "tenant_id", "name", "code", "address", "is_default", "created_at", "updated_at"}

func scanWarehouse(row sq.RowScanner) (*types.Warehouse, error) {
	var w types.Warehouse
	if err := row.Scan(&w.ID, &w.TenantID, &w.Name, &w.Code, &w.Address, &w.IsDefault, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

var skuColumns = []string{
	"id", "tenant_id", "code", "name", "unit", "reorder_point", "reorder_quantity", "is_active", "created_at", "updated_at",
}

func scanSKU(row sq.RowScanner) (*types.SKU, error) {
	var k types.SKU
	err := row.Scan(&k.ID, &k.TenantID, &k.Code, &k.Name, &k.Unit, &k.ReorderPoint, &k.ReorderQuantity, &k.Active, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

var stockLevelColumns = []string{
	"id", "warehouse_id", "sku_id", "quantity", "reserved_quantity", "reorder_point", "created_at", "updated_at",
}

func scanStockLevel(row sq.RowScanner) (*types.StockLevel, error) {
	var l types.StockLevel
	err := row.Scan(&l.ID, &l.WarehouseID, &l.SKUID, &l.Quantity, &l.ReservedQuantity, &l.ReorderPoint, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

var purchaseOrderColumns = []string{
	"id", "tenant_id", "warehouse_id", "number", "status", "order_date", "expected_date", "created_by_user_id", "created_at", "updated_at",
}

func scanPurchaseOrder(row sq.RowScanner) (*types.PurchaseOrder, error) {
	var o types.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.TenantID, &o.WarehouseID, &o.Number, &o.Status, &o.OrderDate, &o.ExpectedDate, &o.CreatedByUserID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

var purchaseOrderLineColumns = []string{"id", "purchase_order_id", "sku_id", "quantity_ordered", "quantity_received", "unit_price"}

func scanPurchaseOrderLine(row sq.RowScanner) (*types.PurchaseOrderLine, error) {
	var l types.PurchaseOrderLine
	if err := row.Scan(&l.ID, &l.PurchaseOrderID, &l.SKUID, &l.QuantityOrdered, &l.QuantityReceived, &l.UnitPrice); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) CreateWarehouse(ctx context.Context, w *types.Warehouse) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWarehouse")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("warehouses").
		Columns("id", "tenant_id", "name", "code", "address", "is_default").
		Values(id, w.TenantID, w.Name, w.Code, w.Address, w.IsDefault).
		Suffix(returning(warehouseColumns)).
		QueryRowContext(ctx)

	warehouse, err := scanWarehouse(row)
	if err != nil {
		return nil, writeError(err, "insert warehouse")
	}

	return warehouse, nil
}

func (s *Storage) GetWarehouse(ctx context.Context, tenantID, id string) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWarehouse")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(warehouseColumns...).
		From("warehouses").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	w, err := scanWarehouse(row)
	if err != nil {
		return nil, readError(err, "get warehouse")
	}

	return w, nil
}

func (s *Storage) ListWarehouses(ctx context.Context, tenantID string) ([]*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWarehouses")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(warehouseColumns...).
		From("warehouses").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}

	return collect(rows, scanWarehouse)
}

func (s *Storage) UpdateWarehouse(ctx context.Context, tenantID string, w *types.Warehouse, paths []string) (*types.Warehouse, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWarehouse")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = w.Name
		case "code":
			updateMap["code"] = w.Code
		case "address":
			updateMap["address"] = w.Address
		case "is_default":
			updateMap["is_default"] = w.IsDefault
		}
	}

	if len(updateMap) == 0 {
		return s.GetWarehouse(ctx, tenantID, w.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("warehouses").
		SetMap(updateMap).
		Where(sq.Eq{"id": w.ID, "tenant_id": tenantID}).
		Suffix(returning(warehouseColumns)).
		QueryRowContext(ctx)

	warehouse, err := scanWarehouse(row)
	if err != nil {
		return nil, writeError(err, "update warehouse")
	}

	return warehouse, nil
}

func (s *Storage) DeleteWarehouse(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWarehouse")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("warehouses").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"warehouse",
	)
}

func (s *Storage) CreateSKU(ctx context.Context, k *types.SKU) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSKU")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("skus").
		Columns("id", "tenant_id", "code", "name", "unit", "reorder_point", "reorder_quantity", "is_active").
		Values(id, k.TenantID, k.Code, k.Name, k.Unit, k.ReorderPoint, k.ReorderQuantity, k.Active).
		Suffix(returning(skuColumns)).
		QueryRowContext(ctx)

	sku, err := scanSKU(row)
	if err != nil {
		return nil, writeError(err, "insert sku")
	}

	return sku, nil
}

func (s *Storage) GetSKU(ctx context.Context, tenantID, id string) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSKU")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(skuColumns...).
		From("skus").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	k, err := scanSKU(row)
	if err != nil {
		return nil, readError(err, "get sku")
	}

	return k, nil
}

func (s *Storage) ListSKUs(ctx context.Context, tenantID string) ([]*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSKUs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(skuColumns...).
		From("skus").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skus: %w", err)
	}

	return collect(rows, scanSKU)
}

func (s *Storage) UpdateSKU(ctx context.Context, tenantID string, k *types.SKU, paths []string) (*types.SKU, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSKU")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = k.Name
		case "code":
			updateMap["code"] = k.Code
		case "unit":
			updateMap["unit"] = k.Unit
		case "reorder_point":
			updateMap["reorder_point"] = k.ReorderPoint
		case "reorder_quantity":
			updateMap["reorder_quantity"] = k.ReorderQuantity
		case "is_active":
			updateMap["is_active"] = k.Active
		}
	}

	if len(updateMap) == 0 {
		return s.GetSKU(ctx, tenantID, k.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("skus").
		SetMap(updateMap).
		Where(sq.Eq{"id": k.ID, "tenant_id": tenantID}).
		Suffix(returning(skuColumns)).
		QueryRowContext(ctx)

	sku, err := scanSKU(row)
	if err != nil {
		return nil, writeError(err, "update sku")
	}

	return sku, nil
}

func (s *Storage) DeleteSKU(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSKU")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("skus").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"sku",
	)
}

// ListStockLevels lists stock of the tenant warehouses, optionally narrowed to one warehouse or sku.
func (s *Storage) ListStockLevels(ctx context.Context, tenantID, warehouseID, skuID string) ([]*types.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStockLevels")
	defer span.End()

	where := sq.Eq{"w.tenant_id": tenantID}
	if warehouseID != "" {
		where["sl.warehouse_id"] = warehouseID
	}
	if skuID != "" {
		where["sl.sku_id"] = skuID
	}

	rows, err := s.db.Statement(ctx).
		Select(prefixed("sl", stockLevelColumns)...).
		From("stock_levels sl").
		Join("warehouses w ON w.id = sl.warehouse_id").
		Where(where).
		OrderBy("sl.warehouse_id", "sl.sku_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}

	return collect(rows, scanStockLevel)
}

// AdjustStock adds delta to the stock of a sku in a warehouse, creating the level on first use.
// A result below zero fails with ErrCheckViolation.
func (s *Storage) AdjustStock(ctx context.Context, warehouseID, skuID string, delta decimal.Decimal) (*types.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AdjustStock")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("stock_levels").
		Columns("id", "warehouse_id", "sku_id", "quantity").
		Values(id, warehouseID, skuID, delta).
		Suffix(
			"ON CONFLICT (warehouse_id, sku_id) DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = NOW() " +
				returning(stockLevelColumns),
		).
		QueryRowContext(ctx)

	level, err := scanStockLevel(row)
	if err != nil {
		return nil, writeError(err, "adjust stock")
	}

	return level, nil
}

func (s *Storage) CreatePurchaseOrder(ctx context.Context, o *types.PurchaseOrder) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePurchaseOrder")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := o.Status
	if status == "" {
		status = types.PurchaseOrderStatusDraft
	}

	row := s.db.Statement(ctx).
		Insert("purchase_orders").
		Columns("id", "tenant_id", "warehouse_id", "number", "status", "order_date", "expected_date", "created_by_user_id").
		Values(id, o.TenantID, o.WarehouseID, o.Number, status, o.OrderDate, o.ExpectedDate, o.CreatedByUserID).
		Suffix(returning(purchaseOrderColumns)).
		QueryRowContext(ctx)

	order, err := scanPurchaseOrder(row)
	if err != nil {
		return nil, writeError(err, "insert purchase order")
	}

	return order, nil
}

func (s *Storage) CreatePurchaseOrderLines(ctx context.Context, lines []*types.PurchaseOrderLine) ([]*types.PurchaseOrderLine, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePurchaseOrderLines")
	defer span.End()

	if len(lines) == 0 {
		return []*types.PurchaseOrderLine{}, nil
	}

	q := s.db.Statement(ctx).
		Insert("purchase_order_lines").
		Columns("id", "purchase_order_id", "sku_id", "quantity_ordered", "quantity_received", "unit_price")

	for _, l := range lines {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		q = q.Values(id, l.PurchaseOrderID, l.SKUID, l.QuantityOrdered, l.QuantityReceived, l.UnitPrice)
	}

	rows, err := q.Suffix(returning(purchaseOrderLineColumns)).QueryContext(ctx)
	if err != nil {
		return nil, writeError(err, "insert purchase order lines")
	}

	return collect(rows, scanPurchaseOrderLine)
}

func (s *Storage) getPurchaseOrder(ctx context.Context, tenantID, id string, lock bool) (*types.PurchaseOrder, error) {
	q := s.db.Statement(ctx).
		Select(purchaseOrderColumns...).
		From("purchase_orders").
		Where(sq.Eq{"id": id, "tenant_id": tenantID})

	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	o, err := scanPurchaseOrder(q.QueryRowContext(ctx))
	if err != nil {
		return nil, readError(err, "get purchase order")
	}

	return o, nil
}

func (s *Storage) GetPurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPurchaseOrder")
	defer span.End()

	return s.getPurchaseOrder(ctx, tenantID, id, false)
}

// GetPurchaseOrderForUpdate loads the order and locks its row until the transaction ends.
func (s *Storage) GetPurchaseOrderForUpdate(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPurchaseOrderForUpdate")
	defer span.End()

	return s.getPurchaseOrder(ctx, tenantID, id, true)
}

func (s *Storage) ListPurchaseOrders(ctx context.Context, tenantID string) ([]*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPurchaseOrders")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(purchaseOrderColumns...).
		From("purchase_orders").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("number DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	return collect(rows, scanPurchaseOrder)
}

func (s *Storage) ListPurchaseOrderLines(ctx context.Context, orderID string) ([]*types.PurchaseOrderLine, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPurchaseOrderLines")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(purchaseOrderLineColumns...).
		From("purchase_order_lines").
		Where(sq.Eq{"purchase_order_id": orderID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase order lines: %w", err)
	}

	return collect(rows, scanPurchaseOrderLine)
}

func (s *Storage) SetPurchaseOrderStatus(ctx context.Context, tenantID, id, status string) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetPurchaseOrderStatus")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("purchase_orders").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		Suffix(returning(purchaseOrderColumns)).
		QueryRowContext(ctx)

	o, err := scanPurchaseOrder(row)
	if err != nil {
		return nil, writeError(err, "update purchase order")
	}

	return o, nil
}

// ReceivePurchaseOrderLine marks the whole ordered quantity of a line as received.
func (s *Storage) ReceivePurchaseOrderLine(ctx context.Context, lineID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReceivePurchaseOrderLine")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("purchase_order_lines").
		Set("quantity_received", sq.Expr("quantity_ordered")).
		Where(sq.Eq{"id": lineID}).
		ExecContext(ctx)
	if err != nil {
		return writeError(err, "receive purchase order line")
	}

	return nil
}
