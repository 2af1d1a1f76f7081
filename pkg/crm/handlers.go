// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

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
	view := mux.With(a.guard.RequirePermission(authorization.CRM_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.CRM_EDIT))

	view.Get("/api/v0/leads", a.listLeads)
	view.Get("/api/v0/leads/{id}", a.getLead)
	mux.With(a.guard.RequirePermission(authorization.CRM_LEAD_CREATE)).Post("/api/v0/leads", a.createLead)
	edit.Put("/api/v0/leads/{id}", a.updateLead)
	edit.Patch("/api/v0/leads/{id}", a.updateLead)
	edit.Delete("/api/v0/leads/{id}", a.deleteLead)
	mux.With(a.guard.RequirePermission(authorization.CRM_LEAD_CONVERT)).Post("/api/v0/leads/{id}/convert", a.convertLead)

	view.Get("/api/v0/customers", a.listCustomers)
	view.Get("/api/v0/customers/{id}", a.getCustomer)
	view.Get("/api/v0/customers/{id}/360", a.customerOverview)
	edit.Post("/api/v0/customers", a.createCustomer)
	edit.Put("/api/v0/customers/{id}", a.updateCustomer)
	edit.Patch("/api/v0/customers/{id}", a.updateCustomer)
	edit.Delete("/api/v0/customers/{id}", a.deleteCustomer)
}

func (a *API) listLeads(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	leads, err := a.service.ListLeads(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, leads)
}

func (a *API) getLead(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	lead, err := a.service.GetLead(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, lead)
}

func (a *API) createLead(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(LeadRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	lead, err := a.service.CreateLead(r.Context(), user, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, lead)
}

func (a *API) updateLead(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(LeadUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	lead, err := a.service.UpdateLead(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, lead)
}

func (a *API) deleteLead(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteLead(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) convertLead(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	conversion, err := a.service.ConvertLead(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, conversion)
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	customers, err := a.service.ListCustomers(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, customers)
}

func (a *API) getCustomer(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.GetCustomer(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, customer)
}

func (a *API) customerOverview(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	overview, err := a.service.CustomerOverview(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, overview)
}

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(CustomerRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.CreateCustomer(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, customer)
}

func (a *API) updateCustomer(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(CustomerUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	customer, err := a.service.UpdateCustomer(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, customer)
}

func (a *API) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteCustomer(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}
