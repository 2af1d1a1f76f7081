// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	Register(context.Context, *RegisterRequest) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	SignInExternal(ctx context.Context, idToken string) (*Session, error)
	Me(context.Context, *types.User) (*Profile, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByCode(ctx context.Context, code string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error)
	LinkExternalIdentity(ctx context.Context, userID, externalID string) error
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	SetRolePermissions(ctx context.Context, roleID string, keys []string) error
	AssignRole(ctx context.Context, userID, roleID string) error
}

type TxInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
