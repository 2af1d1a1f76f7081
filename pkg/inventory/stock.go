// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListStockLevels(ctx context.Context, tenantID, warehouseID, skuID string) ([]*types.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListStockLevels")
	defer span.End()

	return s.storage.ListStockLevels(ctx, tenantID, warehouseID, skuID)
}

// AdjustStock applies a quantity delta to one warehouse and sku pair of the tenant.
// Stock can never go below zero.
func (s *Service) AdjustStock(ctx context.Context, tenantID string, req *StockAdjustment) (*types.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.AdjustStock")
	defer span.End()

	if _, err := s.storage.GetWarehouse(ctx, tenantID, req.WarehouseID); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetSKU(ctx, tenantID, req.SKUID); err != nil {
		return nil, err
	}

	level, err := s.storage.AdjustStock(ctx, req.WarehouseID, req.SKUID, req.Delta)
	if errors.Is(err, storage.ErrCheckViolation) {
		return nil, types.Invalid("insufficient stock for adjustment of %s", req.Delta)
	}
	if err != nil {
		return nil, err
	}

	return level, nil
}
