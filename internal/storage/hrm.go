// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/types"
)

var employeeColumns = []string{
	"id", "tenant_id", "user_id", "employee_code", "full_name", "job_title", "department",
	"base_salary_monthly", "hourly_rate", "hire_date", "termination_date", "is_active", "created_at", "updated_at",
}

func scanEmployee(row sq.RowScanner) (*types.Employee, error) {
	var e types.Employee
	err := row.Scan(
		&e.ID, &e.TenantID, &e.UserID, &e.Code, &e.FullName, &e.JobTitle, &e.Department,
		&e.BaseSalaryMonthly, &e.HourlyRate, &e.HireDate, &e.TerminationDate, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

var payrollRunColumns = []string{"id", "tenant_id", "period", "period_start", "period_end", "status", "created_at", "updated_at"}

func scanPayrollRun(row sq.RowScanner) (*types.PayrollRun, error) {
	var r types.PayrollRun
	if err := row.Scan(&r.ID, &r.TenantID, &r.Period, &r.PeriodStart, &r.PeriodEnd, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

var payrollItemColumns = []string{
	"id", "payroll_run_id", "employee_id", "base_amount", "timesheet_amount", "total_amount", "status", "created_at", "updated_at",
}

func scanPayrollItem(row sq.RowScanner) (*types.PayrollItem, error) {
	var i types.PayrollItem
	err := row.Scan(&i.ID, &i.PayrollRunID, &i.EmployeeID, &i.BaseAmount, &i.TimesheetAmount, &i.TotalAmount, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateEmployee(ctx context.Context, e *types.Employee) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmployee")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("employees").
		Columns(
			"id", "tenant_id", "user_id", "employee_code", "full_name", "job_title", "department",
			"base_salary_monthly", "hourly_rate", "hire_date", "termination_date", "is_active",
		).
		Values(
			id, e.TenantID, e.UserID, e.Code, e.FullName, e.JobTitle, e.Department,
			e.BaseSalaryMonthly, e.HourlyRate, e.HireDate, e.TerminationDate, e.Active,
		).
		Suffix(returning(employeeColumns)).
		QueryRowContext(ctx)

	employee, err := scanEmployee(row)
	if err != nil {
		return nil, writeError(err, "insert employee")
	}

	return employee, nil
}

func (s *Storage) GetEmployee(ctx context.Context, tenantID, id string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEmployee")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	e, err := scanEmployee(row)
	if err != nil {
		return nil, readError(err, "get employee")
	}

	return e, nil
}

func (s *Storage) ListEmployees(ctx context.Context, tenantID string, activeOnly bool) ([]*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEmployees")
	defer span.End()

	where := sq.Eq{"tenant_id": tenantID}
	if activeOnly {
		where["is_active"] = true
	}

	rows, err := s.db.Statement(ctx).
		Select(employeeColumns...).
		From("employees").
		Where(where).
		OrderBy("employee_code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return collect(rows, scanEmployee)
}

func (s *Storage) UpdateEmployee(ctx context.Context, tenantID string, e *types.Employee, paths []string) (*types.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEmployee")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "user_id":
			updateMap["user_id"] = e.UserID
		case "full_name":
			updateMap["full_name"] = e.FullName
		case "job_title":
			updateMap["job_title"] = e.JobTitle
		case "department":
			updateMap["department"] = e.Department
		case "base_salary_monthly":
			updateMap["base_salary_monthly"] = e.BaseSalaryMonthly
		case "hourly_rate":
			updateMap["hourly_rate"] = e.HourlyRate
		case "hire_date":
			updateMap["hire_date"] = e.HireDate
		case "termination_date":
			updateMap["termination_date"] = e.TerminationDate
		case "is_active":
			updateMap["is_active"] = e.Active
		}
	}

	if len(updateMap) == 0 {
		return s.GetEmployee(ctx, tenantID, e.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("employees").
		SetMap(updateMap).
		Where(sq.Eq{"id": e.ID, "tenant_id": tenantID}).
		Suffix(returning(employeeColumns)).
		QueryRowContext(ctx)

	employee, err := scanEmployee(row)
	if err != nil {
		return nil, writeError(err, "update employee")
	}

	return employee, nil
}

func (s *Storage) DeleteEmployee(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEmployee")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("employees").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"employee",
	)
}

// ApprovedHoursByEmployee sums approved timesheet hours per employee with a work date in [start, end].
func (s *Storage) ApprovedHoursByEmployee(ctx context.Context, tenantID string, start, end time.Time) (map[string]decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ApprovedHoursByEmployee")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("employee_id", "COALESCE(SUM(hours), 0)").
		From("timesheets").
		Where(sq.Eq{"tenant_id": tenantID, "status": types.TimesheetStatusApproved}).
		Where(sq.GtOrEq{"work_date": start}).
		Where(sq.LtOrEq{"work_date": end}).
		GroupBy("employee_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved hours: %w", err)
	}
	defer rows.Close()

	hours := make(map[string]decimal.Decimal)
	for rows.Next() {
		var employeeID string
		var total decimal.Decimal
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan approved hours: %w", err)
		}
		hours[employeeID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return hours, nil
}

func (s *Storage) CreatePayrollRun(ctx context.Context, r *types.PayrollRun) (*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayrollRun")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("payroll_runs").
		Columns("id", "tenant_id", "period", "period_start", "period_end", "status").
		Values(id, r.TenantID, r.Period, r.PeriodStart, r.PeriodEnd, r.Status).
		Suffix(returning(payrollRunColumns)).
		QueryRowContext(ctx)

	run, err := scanPayrollRun(row)
	if err != nil {
		return nil, writeError(err, "insert payroll run")
	}

	return run, nil
}

// CreatePayrollItems inserts every item of a run in a single statement.
func (s *Storage) CreatePayrollItems(ctx context.Context, items []*types.PayrollItem) ([]*types.PayrollItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayrollItems")
	defer span.End()

	if len(items) == 0 {
		return []*types.PayrollItem{}, nil
	}

	q := s.db.Statement(ctx).
		Insert("payroll_items").
		Columns("id", "payroll_run_id", "employee_id", "base_amount", "timesheet_amount", "total_amount", "status")

	for _, i := range items {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		q = q.Values(id, i.PayrollRunID, i.EmployeeID, i.BaseAmount, i.TimesheetAmount, i.TotalAmount, i.Status)
	}

	rows, err := q.Suffix(returning(payrollItemColumns)).QueryContext(ctx)
	if err != nil {
		return nil, writeError(err, "insert payroll items")
	}

	return collect(rows, scanPayrollItem)
}

func (s *Storage) GetPayrollRun(ctx context.Context, tenantID, id string) (*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPayrollRun")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(payrollRunColumns...).
		From("payroll_runs").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	r, err := scanPayrollRun(row)
	if err != nil {
		return nil, readError(err, "get payroll run")
	}

	return r, nil
}

func (s *Storage) ListPayrollRuns(ctx context.Context, tenantID string) ([]*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPayrollRuns")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(payrollRunColumns...).
		From("payroll_runs").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("period_start DESC", "created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}

	return collect(rows, scanPayrollRun)
}

func (s *Storage) ListPayrollItems(ctx context.Context, runID string) ([]*types.PayrollItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPayrollItems")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(payrollItemColumns...).
		From("payroll_items").
		Where(sq.Eq{"payroll_run_id": runID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}

	return collect(rows, scanPayrollItem)
}
