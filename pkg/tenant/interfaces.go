// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req *TenantUpdateRequest) (*types.Tenant, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
}
