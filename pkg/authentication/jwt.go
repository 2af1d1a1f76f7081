// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

const (
	ACCESS_TOKEN  = "access"
	REFRESH_TOKEN = "refresh"
)

// Claims are the claims of the tokens issued by the service.
type Claims struct {
	TenantID string `json:"org"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

var _ TokenManagerInterface = (*TokenManager)(nil)

// TokenManager signs and verifies HS256 tokens with a shared secret.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *TokenManager) IssueTokens(ctx context.Context, user *types.User) (*TokenPair, error) {
	ctx, span := m.tracer.Start(ctx, "authentication.TokenManager.IssueTokens")
	defer span.End()

	access, err := m.sign(user, ACCESS_TOKEN, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.sign(user, REFRESH_TOKEN, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(m.accessTTL.Seconds()),
	}, nil
}

func (m *TokenManager) IssueAccessToken(ctx context.Context, user *types.User) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.TokenManager.IssueAccessToken")
	defer span.End()

	return m.sign(user, ACCESS_TOKEN, m.accessTTL)
}

func (m *TokenManager) Verify(ctx context.Context, rawToken, tokenType string) (*Claims, error) {
	_, span := m.tracer.Start(ctx, "authentication.TokenManager.Verify")
	defer span.End()

	claims := new(Claims)
	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, types.ErrAuthentication)
	}

	if claims.Type != tokenType {
		return nil, fmt.Errorf("expected %s token, got %q: %w", tokenType, claims.Type, types.ErrAuthentication)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", types.ErrAuthentication)
	}

	return claims, nil
}

func (m *TokenManager) sign(user *types.User, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()

	claims := Claims{
		TenantID: user.TenantID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %v", tokenType, err)
	}

	return token, nil
}

func NewTokenManager(
	secret string,
	issuer string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
