// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

// TenantUpdateRequest carries the mutable tenant fields, nil fields are left untouched.
type TenantUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Timezone *string `json:"timezone" validate:"omitempty,timezone"`
}
