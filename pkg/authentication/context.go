// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/erp-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var userContextKey = contextKey{}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser retrieves the authenticated user from the context.
func GetUser(ctx context.Context) (*types.User, bool) {
	user, ok := ctx.Value(userContextKey).(*types.User)
	return user, ok && user != nil
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if no user is present.
func GetUserID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

// GetTenantID retrieves the tenant of the authenticated user.
func GetTenantID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.TenantID, true
}

// Caller returns the authenticated user of the request, or an authentication error.
func Caller(ctx context.Context) (*types.User, error) {
	user, ok := GetUser(ctx)
	if !ok {
		return nil, types.ErrAuthentication
	}
	return user, nil
}
