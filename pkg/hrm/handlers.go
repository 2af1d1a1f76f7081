// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

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
	view := mux.With(a.guard.RequirePermission(authorization.HRM_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.HRM_EDIT))

	view.Get("/api/v0/employees", a.listEmployees)
	view.Get("/api/v0/employees/{id}", a.getEmployee)
	edit.Post("/api/v0/employees", a.createEmployee)
	edit.Put("/api/v0/employees/{id}", a.updateEmployee)
	edit.Patch("/api/v0/employees/{id}", a.updateEmployee)
	edit.Delete("/api/v0/employees/{id}", a.deleteEmployee)

	view.Get("/api/v0/payroll", a.listPayrollRuns)
	view.Get("/api/v0/payroll/{id}", a.getPayrollRun)
	edit.Post("/api/v0/payroll", a.generatePayroll)
}

func (a *API) listEmployees(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	activeOnly := false
	if v := r.URL.Query().Get("active"); v != "" {
		if activeOnly, err = strconv.ParseBool(v); err != nil {
			httpTypes.WriteError(w, types.Invalid("active must be a boolean"), a.logger)
			return
		}
	}

	employees, err := a.service.ListEmployees(r.Context(), user.TenantID, activeOnly)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, employees)
}

func (a *API) getEmployee(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.GetEmployee(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, employee)
}

func (a *API) createEmployee(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(EmployeeRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.CreateEmployee(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, employee)
}

func (a *API) updateEmployee(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(EmployeeUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	employee, err := a.service.UpdateEmployee(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, employee)
}

func (a *API) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteEmployee(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) listPayrollRuns(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	runs, err := a.service.ListPayrollRuns(r.Context(), user.TenantID)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, runs)
}

func (a *API) getPayrollRun(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	run, err := a.service.GetPayrollRun(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, run)
}

func (a *API) generatePayroll(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(PayrollRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	run, err := a.service.GeneratePayroll(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(user.ID, "generate", "payroll_run", run.ID)
	httpTypes.WriteJSON(w, http.StatusCreated, run)
}
