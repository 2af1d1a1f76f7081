// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListLeads(ctx context.Context, tenantID string) ([]*types.Lead, error)
	GetLead(ctx context.Context, tenantID, id string) (*types.Lead, error)
	CreateLead(ctx context.Context, caller *types.User, req *LeadRequest) (*types.Lead, error)
	UpdateLead(ctx context.Context, tenantID, id string, req *LeadUpdateRequest) (*types.Lead, error)
	DeleteLead(ctx context.Context, tenantID, id string) error
	ConvertLead(ctx context.Context, tenantID, id string) (*Conversion, error)

	ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	CreateCustomer(ctx context.Context, tenantID string, req *CustomerRequest) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, tenantID, id string, req *CustomerUpdateRequest) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, tenantID, id string) error
	CustomerOverview(ctx context.Context, tenantID, id string) (*Overview, error)
}

type StorageInterface interface {
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
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	ListProjects(ctx context.Context, tenantID, customerID string) ([]*types.Project, error)
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	GetTenantUser(ctx context.Context, tenantID, id string) (*types.User, error)
	NextCode(ctx context.Context, tenantID string, seq storage.Sequence) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
