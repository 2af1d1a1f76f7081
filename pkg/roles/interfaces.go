// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListRoles(ctx context.Context, tenantID string) ([]*types.Role, error)
	GetRole(ctx context.Context, tenantID, id string) (*types.Role, error)
	CreateRole(ctx context.Context, tenantID string, req *RoleRequest) (*types.Role, error)
	UpdateRole(ctx context.Context, tenantID, id string, req *RoleUpdateRequest) (*types.Role, error)
	DeleteRole(ctx context.Context, tenantID, id string) error
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
}

type StorageInterface interface {
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, tenantID, id string) (*types.Role, error)
	ListRoles(ctx context.Context, tenantID string) ([]*types.Role, error)
	UpdateRole(ctx context.Context, tenantID string, r *types.Role, paths []string) (*types.Role, error)
	DeleteRole(ctx context.Context, tenantID, id string) error
	SetRolePermissions(ctx context.Context, roleID string, keys []string) error
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
}
