// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListProjects(ctx context.Context, tenantID, customerID string) ([]*types.Project, error)
	GetProject(ctx context.Context, tenantID, id string) (*types.Project, error)
	CreateProject(ctx context.Context, tenantID string, req *ProjectRequest) (*types.Project, error)
	UpdateProject(ctx context.Context, tenantID, id string, req *ProjectUpdateRequest) (*types.Project, error)
	DeleteProject(ctx context.Context, tenantID, id string) error

	CreateMilestone(ctx context.Context, tenantID, projectID string, req *MilestoneRequest) (*types.Milestone, error)
	UpdateMilestone(ctx context.Context, tenantID, id string, req *MilestoneUpdateRequest) (*types.Milestone, error)
	DeleteMilestone(ctx context.Context, tenantID, id string) error

	CreateTask(ctx context.Context, tenantID, projectID, milestoneID string, req *TaskRequest) (*types.Task, error)
	UpdateTask(ctx context.Context, tenantID, id string, req *TaskUpdateRequest) (*types.Task, error)
	DeleteTask(ctx context.Context, tenantID, id string) error

	ListTimesheets(ctx context.Context, tenantID string, filter types.TimesheetFilter) ([]*types.Timesheet, error)
	CreateTimesheet(ctx context.Context, tenantID string, req *TimesheetRequest) (*types.Timesheet, error)
	ApproveTimesheet(ctx context.Context, approver *types.User, id string) (*types.Timesheet, error)
}

type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProject(ctx context.Context, tenantID, id string) (*types.Project, error)
	ListProjects(ctx context.Context, tenantID, customerID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, tenantID string, p *types.Project, paths []string) (*types.Project, error)
	DeleteProject(ctx context.Context, tenantID, id string) error
	CreateMilestone(ctx context.Context, milestone *types.Milestone) (*types.Milestone, error)
	GetMilestone(ctx context.Context, tenantID, id string) (*types.Milestone, error)
	ListMilestones(ctx context.Context, projectID string) ([]*types.Milestone, error)
	UpdateMilestone(ctx context.Context, tenantID string, milestone *types.Milestone, paths []string) (*types.Milestone, error)
	DeleteMilestone(ctx context.Context, tenantID, id string) error
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, tenantID string, t *types.Task, paths []string) (*types.Task, error)
	DeleteTask(ctx context.Context, tenantID, id string) error
	GetTask(ctx context.Context, tenantID, id string) (*types.Task, error)
	CreateTimesheet(ctx context.Context, t *types.Timesheet) (*types.Timesheet, error)
	ListTimesheets(ctx context.Context, tenantID string, filter types.TimesheetFilter) ([]*types.Timesheet, error)
	ApproveTimesheet(ctx context.Context, tenantID, id, approverID string) (*types.Timesheet, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error)
	GetEmployee(ctx context.Context, tenantID, id string) (*types.Employee, error)
	NextCode(ctx context.Context, tenantID string, seq storage.Sequence) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
