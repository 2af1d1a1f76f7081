// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"net/http"
)

type AuthorizerInterface interface {
	Permissions(ctx context.Context, userID string) (PermissionSet, error)
	Check(ctx context.Context, userID string, keys ...string) (bool, error)
}

// GuardInterface builds the permission guards mounted on routes.
type GuardInterface interface {
	RequirePermission(key string) func(http.Handler) http.Handler
	RequireAnyPermission(keys ...string) func(http.Handler) http.Handler
}

type StorageInterface interface {
	ListPermissionKeysByUserID(ctx context.Context, userID string) ([]string, error)
}
