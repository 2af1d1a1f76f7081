// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	Overview(ctx context.Context, tenantID string) (*types.Dashboard, error)
}

type StorageInterface interface {
	CountRecords(ctx context.Context, tenantID string, entity storage.Entity) (int64, error)
	CountLeadsByStatus(ctx context.Context, tenantID string) ([]*types.StatusCount, error)
	StockByWarehouse(ctx context.Context, tenantID string, limit uint64) ([]*types.WarehouseStock, error)
}
