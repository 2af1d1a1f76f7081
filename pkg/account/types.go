// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"github.com/canonical/erp-service/internal/types"
)

type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required"`
	OrganizationCode string `json:"organization_code" validate:"required,max=50"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FullName         string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ExternalSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// Session is returned by every sign-in flow.
type Session struct {
	User         *types.User   `json:"user"`
	Tenant       *types.Tenant `json:"organization"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

type Profile struct {
	User        *types.User   `json:"user"`
	Tenant      *types.Tenant `json:"organization"`
	Permissions []string      `json:"permissions"`
}
