// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

// ExternalIdentity is the subset of ID token claims used to sign a user in.
type ExternalIdentity struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

var _ ExternalVerifierInterface = (*OIDCVerifier)(nil)

type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *OIDCVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*ExternalIdentity, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.OIDCVerifier.VerifyIDToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		v.logger.Debugf("ID token verification failed: %v", err)
		return nil, fmt.Errorf("%v: %w", err, types.ErrAuthentication)
	}

	identity := new(ExternalIdentity)
	if err := token.Claims(identity); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, fmt.Errorf("%v: %w", err, types.ErrAuthentication)
	}

	if identity.Subject == "" {
		identity.Subject = token.Subject
	}

	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	if identity.Email == "" {
		v.logger.Security().AuthnFailure(identity.Subject, "oidc_missing_email")
		return nil, fmt.Errorf("ID token has no email claim: %w", types.ErrAuthentication)
	}

	return identity, nil
}

func NewOIDCVerifier(
	provider ProviderInterface,
	clientID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *OIDCVerifier {
	config := &oidc.Config{
		ClientID:          clientID,
		SkipClientIDCheck: clientID == "",
		SkipIssuerCheck:   false,
	}

	return NewOIDCVerifierDirect(provider.Verifier(config), tracer, monitor, logger)
}

func NewOIDCVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *OIDCVerifier {
	return &OIDCVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
