// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

const testIssuer = "https://issuer.example.com"

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func TestOIDCVerifier_VerifyIDToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	verifier := NewOIDCVerifierDirect(
		oidc.NewVerifier(testIssuer, keySet, &oidc.Config{ClientID: "erp"}),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)

	now := time.Now()
	base := func(extra jwt.MapClaims) jwt.MapClaims {
		claims := jwt.MapClaims{
			"iss": testIssuer,
			"aud": "erp",
			"sub": "ext-123456789",
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		}
		for k, v := range extra {
			claims[k] = v
		}
		return claims
	}

	tests := []struct {
		name          string
		claims        jwt.MapClaims
		expectedEmail string
		expectErr     bool
	}{
		{
			name:          "valid token",
			claims:        base(jwt.MapClaims{"email": " Jane@Example.com ", "name": "Jane"}),
			expectedEmail: "jane@example.com",
		},
		{
			name:      "missing email",
			claims:    base(nil),
			expectErr: true,
		},
		{
			name:      "wrong audience",
			claims:    base(jwt.MapClaims{"aud": "other", "email": "jane@example.com"}),
			expectErr: true,
		},
		{
			name:      "expired",
			claims:    base(jwt.MapClaims{"exp": now.Add(-time.Hour).Unix(), "email": "jane@example.com"}),
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			identity, err := verifier.VerifyIDToken(context.Background(), signIDToken(t, key, test.claims))

			if test.expectErr {
				if !errors.Is(err, types.ErrAuthentication) {
					t.Fatalf("expected authentication error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.Email != test.expectedEmail || identity.Subject != "ext-123456789" || identity.Name != "Jane" {
				t.Errorf("unexpected identity %+v", identity)
			}
		})
	}
}

func TestNoopVerifier(t *testing.T) {
	if _, err := NewNoopVerifier().VerifyIDToken(context.Background(), "token"); !errors.Is(err, types.ErrAuthentication) {
		t.Errorf("expected authentication error, got %v", err)
	}
}
