// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"net/http"

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
	view := mux.With(a.guard.RequirePermission(authorization.PM_VIEW))
	edit := mux.With(a.guard.RequirePermission(authorization.PM_EDIT))

	view.Get("/api/v0/projects", a.listProjects)
	view.Get("/api/v0/projects/{id}", a.getProject)
	edit.Post("/api/v0/projects", a.createProject)
	edit.Put("/api/v0/projects/{id}", a.updateProject)
	edit.Patch("/api/v0/projects/{id}", a.updateProject)
	edit.Delete("/api/v0/projects/{id}", a.deleteProject)

	edit.Post("/api/v0/projects/{id}/milestones", a.createMilestone)
	edit.Put("/api/v0/milestones/{id}", a.updateMilestone)
	edit.Patch("/api/v0/milestones/{id}", a.updateMilestone)
	edit.Delete("/api/v0/milestones/{id}", a.deleteMilestone)

	edit.Post("/api/v0/projects/{id}/milestones/{milestone_id}/tasks", a.createTask)
	edit.Put("/api/v0/tasks/{id}", a.updateTask)
	edit.Patch("/api/v0/tasks/{id}", a.updateTask)
	edit.Delete("/api/v0/tasks/{id}", a.deleteTask)

	view.Get("/api/v0/timesheets", a.listTimesheets)
	edit.Post("/api/v0/timesheets", a.createTimesheet)
	edit.Post("/api/v0/timesheets/{id}/approve", a.approveTimesheet)
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	projects, err := a.service.ListProjects(r.Context(), user.TenantID, r.URL.Query().Get("customer_id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, projects)
}

func (a *API) getProject(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	project, err := a.service.GetProject(r.Context(), user.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, project)
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(ProjectRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	project, err := a.service.CreateProject(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, project)
}

func (a *API) updateProject(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(ProjectUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	project, err := a.service.UpdateProject(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, project)
}

func (a *API) deleteProject(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteProject(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) createMilestone(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(MilestoneRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	milestone, err := a.service.CreateMilestone(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, milestone)
}

func (a *API) updateMilestone(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(MilestoneUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	milestone, err := a.service.UpdateMilestone(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, milestone)
}

func (a *API) deleteMilestone(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteMilestone(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(TaskRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	task, err := a.service.CreateTask(r.Context(), user.TenantID, chi.URLParam(r, "id"), chi.URLParam(r, "milestone_id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, task)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(TaskUpdateRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	task, err := a.service.UpdateTask(r.Context(), user.TenantID, chi.URLParam(r, "id"), req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, task)
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteTask(r.Context(), user.TenantID, chi.URLParam(r, "id")); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, nil)
}

func (a *API) listTimesheets(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	q := r.URL.Query()
	filter := types.TimesheetFilter{
		EmployeeID: q.Get("employee_id"),
		TaskID:     q.Get("task_id"),
	}

	if filter.From, err = types.ParseDate(q.Get("from"), "from"); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}
	if filter.To, err = types.ParseDate(q.Get("to"), "to"); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	timesheets, err := a.service.ListTimesheets(r.Context(), user.TenantID, filter)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, timesheets)
}

func (a *API) createTimesheet(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	req := new(TimesheetRequest)
	if err := httpTypes.DecodeJSON(r, req); err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	timesheet, err := a.service.CreateTimesheet(r.Context(), user.TenantID, req)
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, timesheet)
}

func (a *API) approveTimesheet(w http.ResponseWriter, r *http.Request) {
	user, err := authentication.Caller(r.Context())
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	timesheet, err := a.service.ApproveTimesheet(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err, a.logger)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, timesheet)
}
