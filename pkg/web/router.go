// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/pkg/account"
	"github.com/canonical/erp-service/pkg/authentication"
	"github.com/canonical/erp-service/pkg/metrics"
	"github.com/canonical/erp-service/pkg/status"
)

type EndpointsInterface interface {
	RegisterEndpoints(chi.Router)
}

// NewRouter mounts the public endpoints at the root and every API in apis behind
// bearer token authentication. Writes run inside a per-request transaction.
func NewRouter(
	accountAPI *account.API,
	apis []EndpointsInterface,
	authn *authentication.Middleware,
	dbClient db.DBClientInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	accountAPI.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())

		accountAPI.RegisterProtectedEndpoints(r)
		for _, api := range apis {
			api.RegisterEndpoints(r)
		}
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
