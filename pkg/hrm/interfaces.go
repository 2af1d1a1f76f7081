// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListEmployees(ctx context.Context, tenantID string, activeOnly bool) ([]*types.Employee, error)
	GetEmployee(ctx context.Context, tenantID, id string) (*types.Employee, error)
	CreateEmployee(ctx context.Context, tenantID string, req *EmployeeRequest) (*types.Employee, error)
	UpdateEmployee(ctx context.Context, tenantID, id string, req *EmployeeUpdateRequest) (*types.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, id string) error

	ListPayrollRuns(ctx context.Context, tenantID string) ([]*types.PayrollRun, error)
	GetPayrollRun(ctx context.Context, tenantID, id string) (*types.PayrollRun, error)
	GeneratePayroll(ctx context.Context, tenantID string, req *PayrollRequest) (*types.PayrollRun, error)
}

type StorageInterface interface {
	CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error)
	GetEmployee(ctx context.Context, tenantID, id string) (*types.Employee, error)
	ListEmployees(ctx context.Context, tenantID string, activeOnly bool) ([]*types.Employee, error)
	UpdateEmployee(ctx context.Context, tenantID string, e *types.Employee, paths []string) (*types.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, id string) error
	ApprovedHoursByEmployee(ctx context.Context, tenantID string, start, end time.Time) (map[string]decimal.Decimal, error)
	CreatePayrollRun(ctx context.Context, r *types.PayrollRun) (*types.PayrollRun, error)
	CreatePayrollItems(ctx context.Context, items []*types.PayrollItem) ([]*types.PayrollItem, error)
	GetPayrollRun(ctx context.Context, tenantID, id string) (*types.PayrollRun, error)
	ListPayrollRuns(ctx context.Context, tenantID string) ([]*types.PayrollRun, error)
	ListPayrollItems(ctx context.Context, runID string) ([]*types.PayrollItem, error)
	GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error)
	NextCode(ctx context.Context, tenantID string, seq storage.Sequence) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
