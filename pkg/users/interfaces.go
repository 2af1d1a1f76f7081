// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context, tenantID string) ([]*Member, error)
	GetUser(ctx context.Context, tenantID, id string) (*Member, error)
	CreateUser(ctx context.Context, tenantID string, req *UserRequest) (*Member, error)
	UpdateUser(ctx context.Context, tenantID, id string, req *UserUpdateRequest) (*Member, error)
	DeleteUser(ctx context.Context, caller *types.User, id string) error
	SetRoles(ctx context.Context, tenantID, id string, roleIDs []string) (*Member, error)
	AssignRole(ctx context.Context, tenantID, userID, roleID string) error
	UnassignRole(ctx context.Context, tenantID, userID, roleID string) error
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
	UpdateUser(ctx context.Context, tenantID string, u *types.User, paths []string) (*types.User, error)
	DeleteUser(ctx context.Context, tenantID, id string) error
	GetRole(ctx context.Context, tenantID, id string) (*types.Role, error)
	AssignRole(ctx context.Context, userID, roleID string) error
	UnassignRole(ctx context.Context, userID, roleID string) error
	SetUserRoles(ctx context.Context, tenantID, userID string, roleIDs []string) error
	ListUserRoles(ctx context.Context, tenantID, userID string) ([]*types.Role, error)
}
