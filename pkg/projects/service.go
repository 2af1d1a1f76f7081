// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListProjects(ctx context.Context, tenantID, customerID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ListProjects")
	defer span.End()

	return s.storage.ListProjects(ctx, tenantID, customerID)
}

// GetProject returns the project with its milestones, each carrying its tasks.
func (s *Service) GetProject(ctx context.Context, tenantID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.GetProject")
	defer span.End()

	project, err := s.storage.GetProject(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	milestones, err := s.storage.ListMilestones(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.storage.ListProjectTasks(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	byMilestone := make(map[string][]*types.Task, len(milestones))
	for _, t := range tasks {
		byMilestone[t.MilestoneID] = append(byMilestone[t.MilestoneID], t)
	}

	for _, m := range milestones {
		m.Tasks = byMilestone[m.ID]
		if m.Tasks == nil {
			m.Tasks = []*types.Task{}
		}
	}

	project.Milestones = milestones

	return project, nil
}

func (s *Service) CreateProject(ctx context.Context, tenantID string, req *ProjectRequest) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateProject")
	defer span.End()

	p := &types.Project{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.TrimSpace(req.Code),
		Status:      strings.TrimSpace(req.Status),
		BudgetHours: req.BudgetHours,
	}
	if p.Name == "" {
		return nil, types.Invalid("name is required")
	}
	if err := nonNegative(p.BudgetHours, "budget_hours"); err != nil {
		return nil, err
	}

	var err error
	if p.StartDate, err = types.ParseDate(req.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if p.EndDate, err = types.ParseDate(req.EndDate, "end_date"); err != nil {
		return nil, err
	}

	if p.CustomerID, err = s.customerRef(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}
	if p.ProjectManagerID, err = s.managerRef(ctx, tenantID, req.ProjectManagerID); err != nil {
		return nil, err
	}

	var created *types.Project
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if p.Code == "" {
			code, err := s.storage.NextCode(ctx, tenantID, storage.SequenceProject)
			if err != nil {
				return err
			}
			p.Code = code
		}

		var err error
		created, err = s.storage.CreateProject(ctx, p)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("project code %s already exists", p.Code)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, tenantID, id string, req *ProjectUpdateRequest) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateProject")
	defer span.End()

	p := &types.Project{ID: id}
	paths := make([]string, 0, 8)

	var err error

	if req.Name != nil {
		if p.Name = strings.TrimSpace(*req.Name); p.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Code != nil {
		if p.Code = strings.TrimSpace(*req.Code); p.Code == "" {
			return nil, types.Invalid("code cannot be empty")
		}
		paths = append(paths, "code")
	}
	if req.Status != nil {
		p.Status = strings.TrimSpace(*req.Status)
		paths = append(paths, "status")
	}
	if req.CustomerID != nil {
		if p.CustomerID, err = s.customerRef(ctx, tenantID, req.CustomerID); err != nil {
			return nil, err
		}
		paths = append(paths, "customer_id")
	}
	if req.ProjectManagerID != nil {
		if p.ProjectManagerID, err = s.managerRef(ctx, tenantID, req.ProjectManagerID); err != nil {
			return nil, err
		}
		paths = append(paths, "project_manager_id")
	}
	if req.StartDate != nil {
		if p.StartDate, err = types.ParseDate(*req.StartDate, "start_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "start_date")
	}
	if req.EndDate != nil {
		if p.EndDate, err = types.ParseDate(*req.EndDate, "end_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "end_date")
	}
	if req.BudgetHours != nil {
		if err := nonNegative(*req.BudgetHours, "budget_hours"); err != nil {
			return nil, err
		}
		p.BudgetHours = *req.BudgetHours
		paths = append(paths, "budget_hours")
	}

	project, err := s.storage.UpdateProject(ctx, tenantID, p, paths)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("project code %s already exists", p.Code)
	}

	return project, err
}

// DeleteProject removes a project along with its milestones and tasks.
func (s *Service) DeleteProject(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteProject")
	defer span.End()

	return s.storage.DeleteProject(ctx, tenantID, id)
}

// customerRef resolves an optional customer reference, an empty id clears it.
func (s *Service) customerRef(ctx context.Context, tenantID string, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	c, err := s.storage.GetCustomer(ctx, tenantID, *id)
	if err != nil {
		return nil, err
	}

	return &c.ID, nil
}

func (s *Service) managerRef(ctx context.Context, tenantID string, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	u, err := s.storage.GetTenantUser(ctx, tenantID, *id)
	if err != nil {
		return nil, err
	}

	return &u.ID, nil
}

func nonNegative(value decimal.Decimal, field string) error {
	if value.IsNegative() {
		return types.Invalid("%s must not be negative", field)
	}
	return nil
}

func NewService(storage StorageInterface, tx TxInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
