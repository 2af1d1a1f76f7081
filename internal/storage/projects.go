// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/erp-service/internal/types"
)

var projectColumns = []string{
	"id", "tenant_id", "customer_id", "source_lead_id", "name", "code", "status", "start_date", "end_date",
	"project_manager_id", "budget_hours", "created_at", "updated_at",
}

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	err := row.Scan(
		&p.ID, &p.TenantID, &p.CustomerID, &p.SourceLeadID, &p.Name, &p.Code, &p.Status, &p.StartDate, &p.EndDate,
		&p.ProjectManagerID, &p.BudgetHours, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var milestoneColumns = []string{
	"id", "project_id", "name", "description", "target_date", "status", "sort_order", "created_at", "updated_at",
}

func scanMilestone(row sq.RowScanner) (*types.Milestone, error) {
	var m types.Milestone
	err := row.Scan(&m.ID, &m.ProjectID, &m.Name, &m.Description, &m.TargetDate, &m.Status, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

var taskColumns = []string{
	"id", "milestone_id", "name", "description", "status", "sort_order", "start_date", "end_date", "estimated_hours", "created_at", "updated_at",
}

func scanTask(row sq.RowScanner) (*types.Task, error) {
	var t types.Task
	err := row.Scan(
		&t.ID, &t.MilestoneID, &t.Name, &t.Description, &t.Status, &t.SortOrder, &t.StartDate, &t.EndDate, &t.EstimatedHours, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var timesheetColumns = []string{
	"id", "tenant_id", "employee_id", "task_id", "work_date", "hours", "status", "notes", "approved_by_user_id", "created_at", "updated_at",
}

func scanTimesheet(row sq.RowScanner) (*types.Timesheet, error) {
	var t types.Timesheet
	err := row.Scan(
		&t.ID, &t.TenantID, &t.EmployeeID, &t.TaskID, &t.WorkDate, &t.Hours, &t.Status, &t.Notes, &t.ApprovedByUserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = types.ProjectStatusActive
	}

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "tenant_id", "customer_id", "source_lead_id", "name", "code", "status", "start_date", "end_date", "project_manager_id", "budget_hours").
		Values(id, p.TenantID, p.CustomerID, p.SourceLeadID, p.Name, p.Code, status, p.StartDate, p.EndDate, p.ProjectManagerID, p.BudgetHours).
		Suffix(returning(projectColumns)).
		QueryRowContext(ctx)

	project, err := scanProject(row)
	if err != nil {
		return nil, writeError(err, "insert project")
	}

	return project, nil
}

func (s *Storage) GetProject(ctx context.Context, tenantID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProject")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		return nil, readError(err, "get project")
	}

	return p, nil
}

// ListProjects lists the tenant projects, optionally only those of one customer.
func (s *Storage) ListProjects(ctx context.Context, tenantID, customerID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjects")
	defer span.End()

	where := sq.Eq{"tenant_id": tenantID}
	if customerID != "" {
		where["customer_id"] = customerID
	}

	rows, err := s.db.Statement(ctx).
		Select(projectColumns...).
		From("projects").
		Where(where).
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return collect(rows, scanProject)
}

func (s *Storage) UpdateProject(ctx context.Context, tenantID string, p *types.Project, paths []string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	updateMap := make(map[string]any)
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = p.Name
		case "code":
			updateMap["code"] = p.Code
		case "status":
			updateMap["status"] = p.Status
		case "customer_id":
			updateMap["customer_id"] = p.CustomerID
		case "start_date":
			updateMap["start_date"] = p.StartDate
		case "end_date":
			updateMap["end_date"] = p.EndDate
		case "project_manager_id":
			updateMap["project_manager_id"] = p.ProjectManagerID
		case "budget_hours":
			updateMap["budget_hours"] = p.BudgetHours
		}
	}

	if len(updateMap) == 0 {
		return s.GetProject(ctx, tenantID, p.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("projects").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID, "tenant_id": tenantID}).
		Suffix(returning(projectColumns)).
		QueryRowContext(ctx)

	project, err := scanProject(row)
	if err != nil {
		return nil, writeError(err, "update project")
	}

	return project, nil
}

// DeleteProject removes the project, milestones and tasks go with it.
func (s *Storage) DeleteProject(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("projects").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"project",
	)
}

func (s *Storage) CreateMilestone(ctx context.Context, m *types.Milestone) (*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMilestone")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := m.Status
	if status == "" {
		status = types.MilestoneStatusPending
	}

	row := s.db.Statement(ctx).
		Insert("milestones").
		Columns("id", "project_id", "name", "description", "target_date", "status", "sort_order").
		Values(id, m.ProjectID, m.Name, m.Description, m.TargetDate, status, m.SortOrder).
		Suffix(returning(milestoneColumns)).
		QueryRowContext(ctx)

	milestone, err := scanMilestone(row)
	if err != nil {
		return nil, writeError(err, "insert milestone")
	}

	return milestone, nil
}

// milestoneInTenant restricts milestones to those whose project belongs to the tenant.
func milestoneInTenant(tenantID string) sq.Sqlizer {
	return sq.Expr("project_id IN (SELECT id FROM projects WHERE tenant_id = ?)", tenantID)
}

func (s *Storage) GetMilestone(ctx context.Context, tenantID, id string) (*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMilestone")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(milestoneColumns...).
		From("milestones").
		Where(sq.Eq{"id": id}).
		Where(milestoneInTenant(tenantID)).
		QueryRowContext(ctx)

	m, err := scanMilestone(row)
	if err != nil {
		return nil, readError(err, "get milestone")
	}

	return m, nil
}

func (s *Storage) ListMilestones(ctx context.Context, projectID string) ([]*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMilestones")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(milestoneColumns...).
		From("milestones").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("sort_order", "created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	return collect(rows, scanMilestone)
}

func (s *Storage) UpdateMilestone(ctx context.Context, tenantID string, m *types.Milestone, paths []string) (*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMilestone")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = m.Name
		case "description":
			updateMap["description"] = m.Description
		case "target_date":
			updateMap["target_date"] = m.TargetDate
		case "status":
			updateMap["status"] = m.Status
		case "sort_order":
			updateMap["sort_order"] = m.SortOrder
		}
	}

	if len(updateMap) == 0 {
		return s.GetMilestone(ctx, tenantID, m.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("milestones").
		SetMap(updateMap).
		Where(sq.Eq{"id": m.ID}).
		Where(milestoneInTenant(tenantID)).
		Suffix(returning(milestoneColumns)).
		QueryRowContext(ctx)

	milestone, err := scanMilestone(row)
	if err != nil {
		return nil, writeError(err, "update milestone")
	}

	return milestone, nil
}

func (s *Storage) DeleteMilestone(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMilestone")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("milestones").Where(sq.Eq{"id": id}).Where(milestoneInTenant(tenantID)),
		"milestone",
	)
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := t.Status
	if status == "" {
		status = types.TaskStatusPending
	}

	row := s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "milestone_id", "name", "description", "status", "sort_order", "start_date", "end_date", "estimated_hours").
		Values(id, t.MilestoneID, t.Name, t.Description, status, t.SortOrder, t.StartDate, t.EndDate, t.EstimatedHours).
		Suffix(returning(taskColumns)).
		QueryRowContext(ctx)

	task, err := scanTask(row)
	if err != nil {
		return nil, writeError(err, "insert task")
	}

	return task, nil
}

// taskInTenant restricts tasks to those reachable from a project of the tenant.
func taskInTenant(tenantID string) sq.Sqlizer {
	return sq.Expr(
		"milestone_id IN (SELECT m.id FROM milestones m JOIN projects p ON p.id = m.project_id WHERE p.tenant_id = ?)",
		tenantID,
	)
}

func (s *Storage) GetTask(ctx context.Context, tenantID, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTask")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": id}).
		Where(taskInTenant(tenantID)).
		QueryRowContext(ctx)

	t, err := scanTask(row)
	if err != nil {
		return nil, readError(err, "get task")
	}

	return t, nil
}

// ListProjectTasks lists the tasks of every milestone of a project.
func (s *Storage) ListProjectTasks(ctx context.Context, projectID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectTasks")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixed("t", taskColumns)...).
		From("tasks t").
		Join("milestones m ON m.id = t.milestone_id").
		Where(sq.Eq{"m.project_id": projectID}).
		OrderBy("t.sort_order", "t.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return collect(rows, scanTask)
}

func (s *Storage) UpdateTask(ctx context.Context, tenantID string, t *types.Task, paths []string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTask")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = t.Name
		case "description":
			updateMap["description"] = t.Description
		case "status":
			updateMap["status"] = t.Status
		case "sort_order":
			updateMap["sort_order"] = t.SortOrder
		case "start_date":
			updateMap["start_date"] = t.StartDate
		case "end_date":
			updateMap["end_date"] = t.EndDate
		case "estimated_hours":
			updateMap["estimated_hours"] = t.EstimatedHours
		}
	}

	if len(updateMap) == 0 {
		return s.GetTask(ctx, tenantID, t.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("tasks").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		Where(taskInTenant(tenantID)).
		Suffix(returning(taskColumns)).
		QueryRowContext(ctx)

	task, err := scanTask(row)
	if err != nil {
		return nil, writeError(err, "update task")
	}

	return task, nil
}

func (s *Storage) DeleteTask(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTask")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("tasks").Where(sq.Eq{"id": id}).Where(taskInTenant(tenantID)),
		"task",
	)
}

func (s *Storage) CreateTimesheet(ctx context.Context, t *types.Timesheet) (*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTimesheet")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := t.Status
	if status == "" {
		status = types.TimesheetStatusDraft
	}

	row := s.db.Statement(ctx).
		Insert("timesheets").
		Columns("id", "tenant_id", "employee_id", "task_id", "work_date", "hours", "status", "notes").
		Values(id, t.TenantID, t.EmployeeID, t.TaskID, t.WorkDate, t.Hours, status, t.Notes).
		Suffix(returning(timesheetColumns)).
		QueryRowContext(ctx)

	timesheet, err := scanTimesheet(row)
	if err != nil {
		return nil, writeError(err, "insert timesheet")
	}

	return timesheet, nil
}

func (s *Storage) GetTimesheet(ctx context.Context, tenantID, id string) (*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTimesheet")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(timesheetColumns...).
		From("timesheets").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	t, err := scanTimesheet(row)
	if err != nil {
		return nil, readError(err, "get timesheet")
	}

	return t, nil
}

func (s *Storage) ListTimesheets(ctx context.Context, tenantID string, filter types.TimesheetFilter) ([]*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTimesheets")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(timesheetColumns...).
		From("timesheets").
		Where(sq.Eq{"tenant_id": tenantID})

	if filter.EmployeeID != "" {
		q = q.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.TaskID != "" {
		q = q.Where(sq.Eq{"task_id": filter.TaskID})
	}
	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"work_date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"work_date": *filter.To})
	}

	rows, err := q.OrderBy("work_date DESC").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	return collect(rows, scanTimesheet)
}

func (s *Storage) ApproveTimesheet(ctx context.Context, tenantID, id, approverID string) (*types.Timesheet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ApproveTimesheet")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("timesheets").
		Set("status", types.TimesheetStatusApproved).
		Set("approved_by_user_id", approverID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		Suffix(returning(timesheetColumns)).
		QueryRowContext(ctx)

	t, err := scanTimesheet(row)
	if err != nil {
		return nil, writeError(err, "approve timesheet")
	}

	return t, nil
}
