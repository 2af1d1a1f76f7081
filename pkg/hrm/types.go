// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"github.com/shopspring/decimal"
)

type EmployeeRequest struct {
	FullName          string          `json:"full_name" validate:"required,max=255"`
	Code              string          `json:"employee_code" validate:"max=50"`
	UserID            *string         `json:"user_id"`
	JobTitle          string          `json:"job_title" validate:"max=255"`
	Department        string          `json:"department" validate:"max=255"`
	BaseSalaryMonthly decimal.Decimal `json:"base_salary_monthly"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	HireDate          string          `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	TerminationDate   string          `json:"termination_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive          *bool           `json:"is_active"`
}

type EmployeeUpdateRequest struct {
	FullName          *string          `json:"full_name"`
	UserID            *string          `json:"user_id"`
	JobTitle          *string          `json:"job_title"`
	Department        *string          `json:"department"`
	BaseSalaryMonthly *decimal.Decimal `json:"base_salary_monthly"`
	HourlyRate        *decimal.Decimal `json:"hourly_rate"`
	HireDate          *string          `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	TerminationDate   *string          `json:"termination_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive          *bool            `json:"is_active"`
}

type PayrollRequest struct {
	Period      string `json:"period" validate:"max=20"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
}

// PayrollGenerated is the payload of the payroll.generated event.
type PayrollGenerated struct {
	RunID       string          `json:"payroll_run_id"`
	Period      string          `json:"period"`
	Items       int             `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
