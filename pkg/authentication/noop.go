// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/erp-service/internal/types"
)

type NoopVerifier struct{}

// NewNoopVerifier returns an external verifier used when OIDC sign-in is disabled, it rejects every token.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyIDToken(ctx context.Context, rawIDToken string) (*ExternalIdentity, error) {
	return nil, fmt.Errorf("external sign-in is disabled: %w", types.ErrAuthentication)
}
