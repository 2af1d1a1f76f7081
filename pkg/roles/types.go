// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

type RoleRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permission_ids"`
}

// RoleUpdateRequest only changes the fields present in the payload.
type RoleUpdateRequest struct {
	Name          *string   `json:"name" validate:"omitempty,max=100"`
	Description   *string   `json:"description"`
	PermissionIDs *[]string `json:"permission_ids"`
}
