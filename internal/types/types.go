// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are rendered as json numbers, as the frontend expects
	decimal.MarshalJSONWithoutQuotes = true
}

type Tenant struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Timezone  string    `db:"timezone" json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID           string    `db:"id" json:"id"`
	TenantID     string    `db:"tenant_id" json:"organization_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	ExternalID   *string   `db:"external_id" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Active       bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Role struct {
	ID            string    `db:"id" json:"id"`
	TenantID      string    `db:"tenant_id" json:"organization_id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	PermissionIDs []string  `db:"-" json:"permission_ids"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Permission is a global catalog entry keyed by "module.action"
type Permission struct {
	ID          string `db:"id" json:"id" yaml:"id"`
	Module      string `db:"module" json:"module" yaml:"module"`
	Action      string `db:"action" json:"action" yaml:"action"`
	Description string `db:"description" json:"description" yaml:"description"`
}

type Lead struct {
	ID                  string          `db:"id" json:"id"`
	TenantID            string          `db:"tenant_id" json:"organization_id"`
	AssignedToUserID    *string         `db:"assigned_to_user_id" json:"assigned_to_user_id"`
	CompanyName         string          `db:"company_name" json:"company_name"`
	ContactName         string          `db:"contact_name" json:"contact_name"`
	Email               string          `db:"email" json:"email"`
	Phone               string          `db:"phone" json:"phone"`
	Status              LeadStatus      `db:"status" json:"status"`
	Stage               string          `db:"stage" json:"stage"`
	Value               decimal.Decimal `db:"value" json:"value"`
	ConvertedCustomerID *string         `db:"converted_customer_id" json:"converted_customer_id"`
	ConvertedProjectID  *string         `db:"converted_project_id" json:"converted_project_id"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

// Converted reports whether the lead already produced a customer.
func (l *Lead) Converted() bool {
	return l.ConvertedCustomerID != nil && *l.ConvertedCustomerID != ""
}

type Customer struct {
	ID              string    `db:"id" json:"id"`
	TenantID        string    `db:"tenant_id" json:"organization_id"`
	Name            string    `db:"name" json:"name"`
	Code            string    `db:"code" json:"code"`
	TaxID           string    `db:"tax_id" json:"tax_id"`
	BillingAddress  string    `db:"billing_address" json:"billing_address"`
	ShippingAddress string    `db:"shipping_address" json:"shipping_address"`
	SourceLeadID    *string   `db:"source_lead_id" json:"source_lead_id"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type Project struct {
	ID               string          `db:"id" json:"id"`
	TenantID         string          `db:"tenant_id" json:"organization_id"`
	CustomerID       *string         `db:"customer_id" json:"customer_id"`
	SourceLeadID     *string         `db:"source_lead_id" json:"source_lead_id"`
	Name             string          `db:"name" json:"name"`
	Code             string          `db:"code" json:"code"`
	Status           string          `db:"status" json:"status"`
	StartDate        *time.Time      `db:"start_date" json:"start_date"`
	EndDate          *time.Time      `db:"end_date" json:"end_date"`
	ProjectManagerID *string         `db:"project_manager_id" json:"project_manager_id"`
	BudgetHours      decimal.Decimal `db:"budget_hours" json:"budget_hours"`
	Milestones       []*Milestone    `db:"-" json:"milestones,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

type Milestone struct {
	ID          string     `db:"id" json:"id"`
	ProjectID   string     `db:"project_id" json:"project_id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	TargetDate  *time.Time `db:"target_date" json:"target_date"`
	Status      string     `db:"status" json:"status"`
	SortOrder   int        `db:"sort_order" json:"sort_order"`
	Tasks       []*Task    `db:"-" json:"tasks,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type Task struct {
	ID             string          `db:"id" json:"id"`
	MilestoneID    string          `db:"milestone_id" json:"milestone_id"`
	Name           string          `db:"name" json:"name"`
	Description    string          `db:"description" json:"description"`
	Status         string          `db:"status" json:"status"`
	SortOrder      int             `db:"sort_order" json:"sort_order"`
	StartDate      *time.Time      `db:"start_date" json:"start_date"`
	EndDate        *time.Time      `db:"end_date" json:"end_date"`
	EstimatedHours decimal.Decimal `db:"estimated_hours" json:"estimated_hours"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

type Timesheet struct {
	ID               string          `db:"id" json:"id"`
	TenantID         string          `db:"tenant_id" json:"organization_id"`
	EmployeeID       string          `db:"employee_id" json:"employee_id"`
	TaskID           string          `db:"task_id" json:"task_id"`
	WorkDate         time.Time       `db:"work_date" json:"work_date"`
	Hours            decimal.Decimal `db:"hours" json:"hours"`
	Status           string          `db:"status" json:"status"`
	Notes            string          `db:"notes" json:"notes"`
	ApprovedByUserID *string         `db:"approved_by_user_id" json:"approved_by_user_id"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

type TimesheetFilter struct {
	EmployeeID string
	TaskID     string
	From       *time.Time
	To         *time.Time
}

// InvoiceFilter narrows invoice listings, zero values match everything.
type InvoiceFilter struct {
	Status     string
	CustomerID string
	Unpaid     bool
}

type Employee struct {
	ID                string          `db:"id" json:"id"`
	TenantID          string          `db:"tenant_id" json:"organization_id"`
	UserID            *string         `db:"user_id" json:"user_id"`
	Code              string          `db:"employee_code" json:"employee_code"`
	FullName          string          `db:"full_name" json:"full_name"`
	JobTitle          string          `db:"job_title" json:"job_title"`
	Department        string          `db:"department" json:"department"`
	BaseSalaryMonthly decimal.Decimal `db:"base_salary_monthly" json:"base_salary_monthly"`
	HourlyRate        decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	HireDate          *time.Time      `db:"hire_date" json:"hire_date"`
	TerminationDate   *time.Time      `db:"termination_date" json:"termination_date"`
	Active            bool            `db:"is_active" json:"is_active"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

type PayrollRun struct {
	ID          string         `db:"id" json:"id"`
	TenantID    string         `db:"tenant_id" json:"organization_id"`
	Period      string         `db:"period" json:"period"`
	PeriodStart time.Time      `db:"period_start" json:"period_start"`
	PeriodEnd   time.Time      `db:"period_end" json:"period_end"`
	Status      string         `db:"status" json:"status"`
	Items       []*PayrollItem `db:"-" json:"items,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

type PayrollItem struct {
	ID              string          `db:"id" json:"id"`
	PayrollRunID    string          `db:"payroll_run_id" json:"payroll_run_id"`
	EmployeeID      string          `db:"employee_id" json:"employee_id"`
	BaseAmount      decimal.Decimal `db:"base_amount" json:"base_amount"`
	TimesheetAmount decimal.Decimal `db:"timesheet_amount" json:"timesheet_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status          string          `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

type Warehouse struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"organization_id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Address   string    `db:"address" json:"address"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SKU struct {
	ID              string          `db:"id" json:"id"`
	TenantID        string          `db:"tenant_id" json:"organization_id"`
	Code            string          `db:"code" json:"code"`
	Name            string          `db:"name" json:"name"`
	Unit            string          `db:"unit" json:"unit"`
	ReorderPoint    decimal.Decimal `db:"reorder_point" json:"reorder_point"`
	ReorderQuantity decimal.Decimal `db:"reorder_quantity" json:"reorder_quantity"`
	Active          bool            `db:"is_active" json:"is_active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

type StockLevel struct {
	ID               string          `db:"id" json:"id"`
	WarehouseID      string          `db:"warehouse_id" json:"warehouse_id"`
	SKUID            string          `db:"sku_id" json:"sku_id"`
	Quantity         decimal.Decimal `db:"quantity" json:"quantity"`
	ReservedQuantity decimal.Decimal `db:"reserved_quantity" json:"reserved_quantity"`
	ReorderPoint     decimal.Decimal `db:"reorder_point" json:"reorder_point"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

type PurchaseOrder struct {
	ID              string               `db:"id" json:"id"`
	TenantID        string               `db:"tenant_id" json:"organization_id"`
	WarehouseID     string               `db:"warehouse_id" json:"warehouse_id"`
	Number          string               `db:"number" json:"number"`
	Status          string               `db:"status" json:"status"`
	OrderDate       *time.Time           `db:"order_date" json:"order_date"`
	ExpectedDate    *time.Time           `db:"expected_date" json:"expected_date"`
	CreatedByUserID *string              `db:"created_by_user_id" json:"created_by_user_id"`
	Lines           []*PurchaseOrderLine `db:"-" json:"lines,omitempty"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updated_at"`
}

type PurchaseOrderLine struct {
	ID               string          `db:"id" json:"id"`
	PurchaseOrderID  string          `db:"purchase_order_id" json:"purchase_order_id"`
	SKUID            string          `db:"sku_id" json:"sku_id"`
	QuantityOrdered  decimal.Decimal `db:"quantity_ordered" json:"quantity_ordered"`
	QuantityReceived decimal.Decimal `db:"quantity_received" json:"quantity_received"`
	UnitPrice        decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type Invoice struct {
	ID         string          `db:"id" json:"id"`
	TenantID   string          `db:"tenant_id" json:"organization_id"`
	CustomerID string          `db:"customer_id" json:"customer_id"`
	ProjectID  *string         `db:"project_id" json:"project_id"`
	Number     string          `db:"number" json:"number"`
	Status     string          `db:"status" json:"status"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	DueDate    *time.Time      `db:"due_date" json:"due_date"`
	PaidAt     *time.Time      `db:"paid_at" json:"paid_at"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}
