// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListEmployees(ctx context.Context, tenantID string, activeOnly bool) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.ListEmployees")
	defer span.End()

	return s.storage.ListEmployees(ctx, tenantID, activeOnly)
}

func (s *Service) GetEmployee(ctx context.Context, tenantID, id string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.GetEmployee")
	defer span.End()

	return s.storage.GetEmployee(ctx, tenantID, id)
}

func (s *Service) CreateEmployee(ctx context.Context, tenantID string, req *EmployeeRequest) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.CreateEmployee")
	defer span.End()

	e := &types.Employee{
		TenantID:          tenantID,
		Code:              strings.TrimSpace(req.Code),
		FullName:          strings.TrimSpace(req.FullName),
		JobTitle:          strings.TrimSpace(req.JobTitle),
		Department:        strings.TrimSpace(req.Department),
		BaseSalaryMonthly: req.BaseSalaryMonthly,
		HourlyRate:        req.HourlyRate,
		Active:            true,
	}
	if req.IsActive != nil {
		e.Active = *req.IsActive
	}

	if e.FullName == "" {
		return nil, types.Invalid("full_name is required")
	}
	if e.BaseSalaryMonthly.IsNegative() {
		return nil, types.Invalid("base_salary_monthly must not be negative")
	}
	if e.HourlyRate.IsNegative() {
		return nil, types.Invalid("hourly_rate must not be negative")
	}

	var err error
	if e.HireDate, err = types.ParseDate(req.HireDate, "hire_date"); err != nil {
		return nil, err
	}
	if e.TerminationDate, err = types.ParseDate(req.TerminationDate, "termination_date"); err != nil {
		return nil, err
	}
	if e.UserID, err = s.userRef(ctx, tenantID, req.UserID); err != nil {
		return nil, err
	}

	var created *types.Employee
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if e.Code == "" {
			code, err := s.storage.NextCode(ctx, tenantID, storage.SequenceEmployee)
			if err != nil {
				return err
			}
			e.Code = code
		}

		var err error
		created, err = s.storage.CreateEmployee(ctx, e)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("employee code %s already exists", e.Code)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, tenantID, id string, req *EmployeeUpdateRequest) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.UpdateEmployee")
	defer span.End()

	e := &types.Employee{ID: id}
	paths := make([]string, 0, 9)

	var err error

	if req.FullName != nil {
		if e.FullName = strings.TrimSpace(*req.FullName); e.FullName == "" {
			return nil, types.Invalid("full_name cannot be empty")
		}
		paths = append(paths, "full_name")
	}
	if req.UserID != nil {
		if e.UserID, err = s.userRef(ctx, tenantID, req.UserID); err != nil {
			return nil, err
		}
		paths = append(paths, "user_id")
	}
	if req.JobTitle != nil {
		e.JobTitle = strings.TrimSpace(*req.JobTitle)
		paths = append(paths, "job_title")
	}
	if req.Department != nil {
		e.Department = strings.TrimSpace(*req.Department)
		paths = append(paths, "department")
	}
	if req.BaseSalaryMonthly != nil {
		if req.BaseSalaryMonthly.IsNegative() {
			return nil, types.Invalid("base_salary_monthly must not be negative")
		}
		e.BaseSalaryMonthly = *req.BaseSalaryMonthly
		paths = append(paths, "base_salary_monthly")
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, types.Invalid("hourly_rate must not be negative")
		}
		e.HourlyRate = *req.HourlyRate
		paths = append(paths, "hourly_rate")
	}
	if req.HireDate != nil {
		if e.HireDate, err = types.ParseDate(*req.HireDate, "hire_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "hire_date")
	}
	if req.TerminationDate != nil {
		if e.TerminationDate, err = types.ParseDate(*req.TerminationDate, "termination_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "termination_date")
	}
	if req.IsActive != nil {
		e.Active = *req.IsActive
		paths = append(paths, "is_active")
	}

	return s.storage.UpdateEmployee(ctx, tenantID, e, paths)
}

func (s *Service) DeleteEmployee(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.DeleteEmployee")
	defer span.End()

	return s.storage.DeleteEmployee(ctx, tenantID, id)
}

// userRef resolves an optional link to a user account of the tenant, an empty id clears it.
func (s *Service) userRef(ctx context.Context, tenantID string, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	u, err := s.storage.GetTenantUser(ctx, tenantID, *id)
	if err != nil {
		return nil, err
	}

	return &u.ID, nil
}
