// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"github.com/canonical/erp-service/internal/types"
)

// Member is a user of the tenant along with the roles it holds.
type Member struct {
	*types.User
	RoleIDs []string `json:"role_ids"`
}

type UserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	FullName string   `json:"full_name" validate:"required"`
	Password string   `json:"password" validate:"omitempty,min=8"`
	IsActive *bool    `json:"is_active"`
	RoleIDs  []string `json:"role_ids"`
}

type UserUpdateRequest struct {
	FullName *string   `json:"full_name"`
	IsActive *bool     `json:"is_active"`
	Password *string   `json:"password" validate:"omitempty,min=8"`
	RoleIDs  *[]string `json:"role_ids"`
}

type RolesRequest struct {
	RoleIDs []string `json:"role_ids"`
}
