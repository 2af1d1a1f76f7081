// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"github.com/shopspring/decimal"
)

type ProjectRequest struct {
	Name             string          `json:"name" validate:"required,max=255"`
	Code             string          `json:"code" validate:"max=50"`
	Status           string          `json:"status" validate:"max=50"`
	CustomerID       *string         `json:"customer_id"`
	ProjectManagerID *string         `json:"project_manager_id"`
	StartDate        string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	BudgetHours      decimal.Decimal `json:"budget_hours"`
}

type ProjectUpdateRequest struct {
	Name             *string          `json:"name"`
	Code             *string          `json:"code"`
	Status           *string          `json:"status"`
	CustomerID       *string          `json:"customer_id"`
	ProjectManagerID *string          `json:"project_manager_id"`
	StartDate        *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	BudgetHours      *decimal.Decimal `json:"budget_hours"`
}

type MilestoneRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"max=50"`
	SortOrder   int    `json:"sort_order"`
}

type MilestoneUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"`
	SortOrder   *int    `json:"sort_order"`
}

type TaskRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description"`
	Status         string          `json:"status" validate:"max=50"`
	SortOrder      int             `json:"sort_order"`
	StartDate      string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
}

type TaskUpdateRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Status         *string          `json:"status"`
	SortOrder      *int             `json:"sort_order"`
	StartDate      *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
}

type TimesheetRequest struct {
	EmployeeID string          `json:"employee_id" validate:"required"`
	TaskID     string          `json:"task_id" validate:"required"`
	WorkDate   string          `json:"work_date" validate:"required,datetime=2006-01-02"`
	Hours      decimal.Decimal `json:"hours"`
	Status     string          `json:"status" validate:"omitempty,oneof=draft submitted"`
	Notes      string          `json:"notes"`
}
