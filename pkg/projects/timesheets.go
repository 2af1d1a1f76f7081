// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"strings"

	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListTimesheets(ctx context.Context, tenantID string, filter types.TimesheetFilter) ([]*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ListTimesheets")
	defer span.End()

	return s.storage.ListTimesheets(ctx, tenantID, filter)
}

// CreateTimesheet logs hours of an employee on a task, both must belong to the tenant.
func (s *Service) CreateTimesheet(ctx context.Context, tenantID string, req *TimesheetRequest) (*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateTimesheet")
	defer span.End()

	if req.EmployeeID == "" || req.TaskID == "" || req.WorkDate == "" {
		return nil, types.Invalid("employee_id, task_id and work_date are required")
	}

	if err := nonNegative(req.Hours, "hours"); err != nil {
		return nil, err
	}

	workDate, err := types.ParseDate(req.WorkDate, "work_date")
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(req.Status)
	if status != "" && !types.ValidTimesheetStatus(status) {
		return nil, types.Invalid("invalid timesheet status %q", status)
	}

	employee, err := s.storage.GetEmployee(ctx, tenantID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	task, err := s.storage.GetTask(ctx, tenantID, req.TaskID)
	if err != nil {
		return nil, err
	}

	return s.storage.CreateTimesheet(
		ctx,
		&types.Timesheet{
			TenantID:   tenantID,
			EmployeeID: employee.ID,
			TaskID:     task.ID,
			WorkDate:   *workDate,
			Hours:      req.Hours,
			Status:     status,
			Notes:      strings.TrimSpace(req.Notes),
		},
	)
}

// ApproveTimesheet marks a timesheet approved by the caller, approved hours count towards payroll.
func (s *Service) ApproveTimesheet(ctx context.Context, approver *types.User, id string) (*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ApproveTimesheet")
	defer span.End()

	t, err := s.storage.ApproveTimesheet(ctx, approver.TenantID, id, approver.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("timesheet %s approved by %s", t.ID, approver.ID)

	return t, nil
}
