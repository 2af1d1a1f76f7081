// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/erp-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

// TokenManagerInterface issues and verifies the tokens signed by the service itself.
type TokenManagerInterface interface {
	IssueTokens(context.Context, *types.User) (*TokenPair, error)
	IssueAccessToken(context.Context, *types.User) (string, error)
	// Verify parses rawToken and checks it carries the expected token type
	Verify(ctx context.Context, rawToken, tokenType string) (*Claims, error)
}

// ExternalVerifierInterface validates ID tokens minted by an external identity provider.
type ExternalVerifierInterface interface {
	VerifyIDToken(context.Context, string) (*ExternalIdentity, error)
}

type UserStorageInterface interface {
	GetUserByID(context.Context, string) (*types.User, error)
}
