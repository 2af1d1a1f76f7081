// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"
	"strings"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

var _ GuardInterface = (*Middleware)(nil)

// Middleware guards routes with permission checks, it must run after authentication.
type Middleware struct {
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequirePermission allows the request only if the caller holds key.
func (m *Middleware) RequirePermission(key string) func(http.Handler) http.Handler {
	return m.RequireAnyPermission(key)
}

// RequireAnyPermission allows the request if the caller holds at least one of keys.
func (m *Middleware) RequireAnyPermission(keys ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireAnyPermission")
			defer span.End()

			user, ok := authentication.GetUser(ctx)
			if !ok {
				httpTypes.WriteError(w, types.ErrAuthentication, m.logger)
				return
			}

			allowed, err := m.authorizer.Check(ctx, user.ID, keys...)
			if err != nil {
				httpTypes.WriteError(w, err, m.logger)
				return
			}

			if !allowed {
				m.logger.Security().AuthzFailure(user.ID, r.Method+" "+r.URL.Path+" requires "+strings.Join(keys, "|"))
				httpTypes.WriteError(w, types.ErrAuthorization, m.logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func NewMiddleware(authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
