// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/pkg/authentication"

	httpTypes "github.com/canonical/erp-service/internal/http/types"
)

type API struct {
	service ServiceInterface
	guard   authorization.GuardInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, guard authorization.GuardInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		guard:   guard,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	view := mux.With(a.guard.RequirePermission(authorization.AUTH_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.AUTH_EDIT))

	view.Get("/api/v0/permissions", a.listPermissions)
	view.Get("/api/v0/roles/permissions", a.listPermissions)
	view.Get("/api/v0/roles", a.listRoles)
	view.Get("/api/v0/roles/{id}", a.getRole)
	edit.Post("/api/v0/roles", a.createRole)
	edit.Put("/api/v0/roles/{id}", a.updateRole)
	edit.Patch("/api/v0/roles/{id}", a.updateRole)
	edit.Delete("/api/v0/roles/{id}", a.deleteRole)
}

func (a *API) listPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := a.service.ListPermissions(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, permissions)
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	roles, err := a.service.ListRoles(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, roles)
}

func (a *API) getRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	role, err := a.service.GetRole(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, role)
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(RoleRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	role, err := a.service.CreateRole(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "create", "role", role.ID)
	httpTypes.WriteJSON(w, http.StatusCreated, role)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(RoleUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	role, err := a.service.UpdateRole(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "update", "role", role.ID)
	httpTypes.WriteJSON(w, http.StatusOK, role)
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.DeleteRole(r.Context(), user.TenantID, id); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "delete", "role", id)
	httpTypes.WriteJSON(w, http.StatusOK, nil)
}
