// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

func newTestTokenManager(secret string) *TokenManager {
	return NewTokenManager(secret, "erp-test", time.Hour, 24*time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newTestTokenManager("secret")
	user := &types.User{ID: "user-1", TenantID: "tenant-1"}

	pair, err := m.IssueTokens(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.TokenType != "Bearer" || pair.ExpiresIn != 3600 {
		t.Errorf("unexpected token pair metadata: %+v", pair)
	}

	claims, err := m.Verify(context.Background(), pair.AccessToken, ACCESS_TOKEN)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if claims.Subject != user.ID || claims.TenantID != user.TenantID {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := m.Verify(context.Background(), pair.RefreshToken, REFRESH_TOKEN); err != nil {
		t.Errorf("refresh token rejected: %v", err)
	}
}

func TestTokenManager_VerifyFailures(t *testing.T) {
	user := &types.User{ID: "user-1", TenantID: "tenant-1"}
	m := newTestTokenManager("secret")

	pair, err := m.IssueTokens(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expired := newTestTokenManager("secret")
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expiredPair, err := expired.IssueTokens(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	foreign := newTestTokenManager("other-secret")
	foreignPair, err := foreign.IssueTokens(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Type: ACCESS_TOKEN}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		token     string
		tokenType string
	}{
		{name: "refresh token used as access token", token: pair.RefreshToken, tokenType: ACCESS_TOKEN},
		{name: "access token used as refresh token", token: pair.AccessToken, tokenType: REFRESH_TOKEN},
		{name: "expired token", token: expiredPair.AccessToken, tokenType: ACCESS_TOKEN},
		{name: "wrong secret", token: foreignPair.AccessToken, tokenType: ACCESS_TOKEN},
		{name: "unsigned token", token: unsigned, tokenType: ACCESS_TOKEN},
		{name: "garbage", token: "not-a-jwt", tokenType: ACCESS_TOKEN},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.Verify(context.Background(), test.token, test.tokenType)
			if !errors.Is(err, types.ErrAuthentication) {
				t.Errorf("expected authentication error, got %v", err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CheckPassword(&hash, "correct horse") {
		t.Error("expected password to match")
	}

	if CheckPassword(&hash, "battery staple") {
		t.Error("expected wrong password to be rejected")
	}

	if CheckPassword(nil, "correct horse") {
		t.Error("expected nil hash to be rejected")
	}
}
