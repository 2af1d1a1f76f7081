// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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

	view.Get("/api/v0/users", a.listUsers)
	view.Get("/api/v0/users/{id}", a.getUser)
	edit.Post("/api/v0/users", a.createUser)
	edit.Put("/api/v0/users/{id}", a.updateUser)
	edit.Patch("/api/v0/users/{id}", a.updateUser)
	edit.Delete("/api/v0/users/{id}", a.deleteUser)
	edit.Put("/api/v0/users/{id}/roles", a.setRoles)
	edit.Post("/api/v0/users/{id}/roles/{role_id}", a.assignRole)
	edit.Delete("/api/v0/users/{id}/roles/{role_id}", a.unassignRole)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	members, err := a.service.ListUsers(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, members)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	member, err := a.service.GetUser(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, member)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(UserRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	member, err := a.service.CreateUser(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "create", "user", member.ID)
	httpTypes.WriteJSON(w, http.StatusCreated, member)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(UserUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	member, err := a.service.UpdateUser(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "update", "user", member.ID)
	httpTypes.WriteJSON(w, http.StatusOK, member)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.DeleteUser(r.Context(), user, id); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "delete", "user", id)
	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) setRoles(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(RolesRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	member, err := a.service.SetRoles(r.Context(), user.TenantID, chi.URLParam(r, "id"), req.RoleIDs)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "set_roles", "user", member.ID)
	httpTypes.WriteJSON(w, http.StatusOK, member)
}

func (a *API) assignRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	id, roleID := chi.URLParam(r, "id"), chi.URLParam(r, "role_id")
	if err := a.service.AssignRole(r.Context(), user.TenantID, id, roleID); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "assign_role "+roleID, "user", id)
	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) unassignRole(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	id, roleID := chi.URLParam(r, "id"), chi.URLParam(r, "role_id")
	if err := a.service.UnassignRole(r.Context(), user.TenantID, id, roleID); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "unassign_role "+roleID, "user", id)
	httpTypes.WriteJSON(w, http.StatusOK, nil)
}
