// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/pkg/authentication"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints serves the overview to any authenticated member of the tenant.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/dashboard", a.overview)
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	d, err := a.service.Overview(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, d)
}
