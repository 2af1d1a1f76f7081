// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package finance

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/types"
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
	view := mux.With(a.guard.RequirePermission(authorization.FINANCE_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.FINANCE_EDIT))

	view.Get("/api/v0/invoices", a.listInvoices)
	view.Get("/api/v0/invoices/{id}", a.getInvoice)
	edit.Post("/api/v0/invoices", a.createInvoice)
	edit.Put("/api/v0/invoices/{id}", a.updateInvoice)
	edit.Patch("/api/v0/invoices/{id}", a.updateInvoice)
	edit.Delete("/api/v0/invoices/{id}", a.deleteInvoice)
}

func (a *API) listInvoices(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	q := r.URL.Query()
	filter := types.InvoiceFilter{Status: q.Get("status"), CustomerID: q.Get("customer_id")}
	if v := q.Get("unpaid"); v != "" {
		if filter.Unpaid, err = strconv.ParseBool(v); err != nil {
			httpTypes.WriteError(w, types.Invalid("unpaid must be a boolean"), a.logger)
			return
		}
	}

	invoices, err := a.service.ListInvoices(r.Context(), user.TenantID, filter)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, invoices)
}

func (a *API) getInvoice(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	invoice, err := a.service.GetInvoice(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, invoice)
}

func (a *API) createInvoice(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(InvoiceRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	invoice, err := a.service.CreateInvoice(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, invoice)
}

func (a *API) updateInvoice(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(InvoiceUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	invoice, err := a.service.UpdateInvoice(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, invoice)
}

func (a *API) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.DeleteInvoice(r.Context(), user.TenantID, id); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "delete", "invoice", id)
	httpTypes.WriteJSON(w, http.StatusOK, nil)
}
