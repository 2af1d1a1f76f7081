// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

// NewExternalVerifier initializes the verifier of external ID tokens.
func NewExternalVerifier(
	ctx context.Context,
	issuer string,
	jwksURL string,
	clientID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (ExternalVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for OIDC sign-in")
	}

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
		verifier := NewOIDCVerifierDirect(NewVerifierWithJWKS(ctx, issuer, jwksURL, clientID), tracer, monitor, logger)
		logger.Info("OIDC sign-in is enabled with manual JWKS URL")
		return verifier, nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	logger.Info("OIDC sign-in is enabled with OIDC discovery")
	return NewOIDCVerifier(provider, clientID, tracer, monitor, logger), nil
}
