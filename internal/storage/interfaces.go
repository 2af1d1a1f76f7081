// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/types"
)

type StorageInterface interface {
	IdentityStorageInterface
	SequenceStorageInterface
	CRMStorageInterface
	ProjectStorageInterface
	HRMStorageInterface
	InventoryStorageInterface
	FinanceStorageInterface
	DashboardStorageInterface

	Ping(ctx context.Context) error
}

type IdentityStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByCode(ctx context.Context, code string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, t *types.Tenant, paths []string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*types.User, error)
	GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
	UpdateUser(ctx context.Context, tenantID string, u *types.User, paths []string) (*types.User, error)
	DeleteUser(ctx context.Context, tenantID, id string) error
	LinkExternalIdentity(ctx context.Context, userID, externalID string) error
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, tenantID, id string) (*types.Role, error)
	ListRoles(ctx context.Context, tenantID string) ([]*types.Role, error)
	UpdateRole(ctx context.Context, tenantID string, r *types.Role, paths []string) (*types.Role, error)
	DeleteRole(ctx context.Context, tenantID, id string) error
	SetRolePermissions(ctx context.Context, roleID string, keys []string) error
	AssignRole(ctx context.Context, userID, roleID string) error
	UnassignRole(ctx context.Context, userID, roleID string) error
	SetUserRoles(ctx context.Context, tenantID, userID string, roleIDs []string) error
	ListUserRoles(ctx context.Context, tenantID, userID string) ([]*types.Role, error)
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	InsertPermission(ctx context.Context, p *types.Permission) (bool, error)
	ListPermissionKeysByUserID(ctx context.Context, userID string) ([]string, error)
}

type SequenceStorageInterface interface {
	NextSequence(ctx context.Context, tenantID string, seq Sequence) (int64, error)
	NextCode(ctx context.Context, tenantID string, seq Sequence) (string, error)
}

type CRMStorageInterface interface {
	CreateLead(ctx context.Context, l *types.Lead) (*types.Lead, error)
	GetLead(ctx context.Context, tenantID, id string) (*types.Lead, error)
	GetLeadForUpdate(ctx context.Context, tenantID, id string) (*types.Lead, error)
	ListLeads(ctx context.Context, tenantID string) ([]*types.Lead, error)
	UpdateLead(ctx context.Context, tenantID string, l *types.Lead, paths []string) (*types.Lead, error)
	MarkLeadConverted(ctx context.Context, tenantID, leadID, customerID, projectID string) (*types.Lead, error)
	DeleteLead(ctx context.Context, tenantID, id string) error
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error)
	UpdateCustomer(ctx context.Context, tenantID string, c *types.Customer, paths []string) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, tenantID, id string) error
}

type ProjectStorageInterface interface {
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
	GetTask(ctx context.Context, tenantID, id string) (*types.Task, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, tenantID string, t *types.Task, paths []string) (*types.Task, error)
	DeleteTask(ctx context.Context, tenantID, id string) error
	CreateTimesheet(ctx context.Context, t *types.Timesheet) (*types.Timesheet, error)
	GetTimesheet(ctx context.Context, tenantID, id string) (*types.Timesheet, error)
	ListTimesheets(ctx context.Context, tenantID string, filter types.TimesheetFilter) ([]*types.Timesheet, error)
	ApproveTimesheet(ctx context.Context, tenantID, id, approverID string) (*types.Timesheet, error)
}

type HRMStorageInterface interface {
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
}

type InventoryStorageInterface interface {
	CreateWarehouse(ctx context.Context, w *types.Warehouse) (*types.Warehouse, error)
	GetWarehouse(ctx context.Context, tenantID, id string) (*types.Warehouse, error)
	ListWarehouses(ctx context.Context, tenantID string) ([]*types.Warehouse, error)
	UpdateWarehouse(ctx context.Context, tenantID string, w *types.Warehouse, paths []string) (*types.Warehouse, error)
	DeleteWarehouse(ctx context.Context, tenantID, id string) error
	CreateSKU(ctx context.Context, k *types.SKU) (*types.SKU, error)
	GetSKU(ctx context.Context, tenantID, id string) (*types.SKU, error)
	ListSKUs(ctx context.Context, tenantID string) ([]*types.SKU, error)
	UpdateSKU(ctx context.Context, tenantID string, k *types.SKU, paths []string) (*types.SKU, error)
	DeleteSKU(ctx context.Context, tenantID, id string) error
	ListStockLevels(ctx context.Context, tenantID, warehouseID, skuID string) ([]*types.StockLevel, error)
	AdjustStock(ctx context.Context, warehouseID, skuID string, delta decimal.Decimal) (*types.StockLevel, error)
	CreatePurchaseOrder(ctx context.Context, o *types.PurchaseOrder) (*types.PurchaseOrder, error)
	CreatePurchaseOrderLines(ctx context.Context, lines []*types.PurchaseOrderLine) ([]*types.PurchaseOrderLine, error)
	GetPurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
	GetPurchaseOrderForUpdate(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, tenantID string) ([]*types.PurchaseOrder, error)
	ListPurchaseOrderLines(ctx context.Context, orderID string) ([]*types.PurchaseOrderLine, error)
	SetPurchaseOrderStatus(ctx context.Context, tenantID, id, status string) (*types.PurchaseOrder, error)
	ReceivePurchaseOrderLine(ctx context.Context, lineID string) error
}

type FinanceStorageInterface interface {
	CreateInvoice(ctx context.Context, i *types.Invoice) (*types.Invoice, error)
	GetInvoice(ctx context.Context, tenantID, id string) (*types.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, tenantID, id string) (*types.Invoice, error)
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	UpdateInvoice(ctx context.Context, tenantID string, i *types.Invoice, paths []string) (*types.Invoice, error)
	DeleteInvoice(ctx context.Context, tenantID, id string) error
}

type DashboardStorageInterface interface {
	CountRecords(ctx context.Context, tenantID string, entity Entity) (int64, error)
	CountLeadsByStatus(ctx context.Context, tenantID string) ([]*types.StatusCount, error)
	StockByWarehouse(ctx context.Context, tenantID string, limit uint64) ([]*types.WarehouseStock, error)
}
