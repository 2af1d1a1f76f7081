// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListWarehouses(ctx context.Context, tenantID string) ([]*types.Warehouse, error)
	GetWarehouse(ctx context.Context, tenantID, id string) (*types.Warehouse, error)
	CreateWarehouse(ctx context.Context, tenantID string, req *WarehouseRequest) (*types.Warehouse, error)
	UpdateWarehouse(ctx context.Context, tenantID, id string, req *WarehouseUpdateRequest) (*types.Warehouse, error)
	DeleteWarehouse(ctx context.Context, tenantID, id string) error

	ListSKUs(ctx context.Context, tenantID string) ([]*types.SKU, error)
	GetSKU(ctx context.Context, tenantID, id string) (*types.SKU, error)
	CreateSKU(ctx context.Context, tenantID string, req *SKURequest) (*types.SKU, error)
	UpdateSKU(ctx context.Context, tenantID, id string, req *SKUUpdateRequest) (*types.SKU, error)
	DeleteSKU(ctx context.Context, tenantID, id string) error

	ListStockLevels(ctx context.Context, tenantID, warehouseID, skuID string) ([]*types.StockLevel, error)
	AdjustStock(ctx context.Context, tenantID string, req *StockAdjustment) (*types.StockLevel, error)

	ListPurchaseOrders(ctx context.Context, tenantID string) ([]*types.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, caller *types.User, req *PurchaseOrderRequest) (*types.PurchaseOrder, error)
	ReceivePurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
}

type StorageInterface interface {
	CreateWarehouse(ctx context.Context, w *types.Warehouse) (*types.Warehouse, error)
	GetWarehouse(ctx context.Context, tenantID, id string) (*types.Warehouse, error)
	ListWarehouses(ctx context.Context, tenantID string) ([]*types.Warehouse, error)
	UpdateWarehouse(ctx context.Context, tenantID string, w *types.Warehouse, paths []string) (*types.Warehouse, error)
	DeleteWarehouse(ctx context.Context, tenantID, id string) error

	CreateSKU(ctx context.Context, k *types.SKU) (*types.SKU, error)
	GetSKU(ctx context.Context, tenantID, id string) (*types.SKU, error)
	ListSKUs(ctx context.Context, tenantID string) ([]*types.SKU, error)
	UpdateSKU(ctx context.Context, tenantID string, k *types.SKU, paths []string) (*types.SKU, error)
	DeleteSKU(ctx context.Context, tenantID, id string) error

	ListStockLevels(ctx context.Context, tenantID, warehouseID, skuID string) ([]*types.StockLevel, error)
	AdjustStock(ctx context.Context, warehouseID, skuID string, delta decimal.Decimal) (*types.StockLevel, error)

	CreatePurchaseOrder(ctx context.Context, o *types.PurchaseOrder) (*types.PurchaseOrder, error)
	CreatePurchaseOrderLines(ctx context.Context, lines []*types.PurchaseOrderLine) ([]*types.PurchaseOrderLine, error)
	GetPurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
	GetPurchaseOrderForUpdate(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, tenantID string) ([]*types.PurchaseOrder, error)
	ListPurchaseOrderLines(ctx context.Context, orderID string) ([]*types.PurchaseOrderLine, error)
	SetPurchaseOrderStatus(ctx context.Context, tenantID, id, status string) (*types.PurchaseOrder, error)
	ReceivePurchaseOrderLine(ctx context.Context, lineID string) error

	NextCode(ctx context.Context, tenantID string, seq storage.Sequence) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
