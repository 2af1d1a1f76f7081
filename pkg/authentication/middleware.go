// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

type Middleware struct {
	tokens  TokenManagerInterface
	storage UserStorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the bearer token into an active user stored in the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.logger.Security().AuthnFailure("", "missing_bearer_token")
				httpTypes.WriteError(w, types.ErrAuthentication, m.logger)
				return
			}

			claims, err := m.tokens.Verify(ctx, token, ACCESS_TOKEN)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid_token")
				httpTypes.WriteError(w, types.ErrAuthentication, m.logger)
				return
			}

			user, err := m.storage.GetUserByID(ctx, claims.Subject)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				httpTypes.WriteError(w, err, m.logger)
				return
			}

			if user == nil || !user.Active {
				m.logger.Security().AuthnFailure(claims.Subject, "account_inactive")
				httpTypes.WriteError(w, fmt.Errorf("user %s: %w", claims.Subject, types.ErrInactiveAccount), m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func NewMiddleware(tokens TokenManagerInterface, storage UserStorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:  tokens,
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
