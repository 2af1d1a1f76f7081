// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package finance

import (
	"context"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

type ServiceInterface interface {
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	GetInvoice(ctx context.Context, tenantID, id string) (*types.Invoice, error)
	CreateInvoice(ctx context.Context, tenantID string, req *InvoiceRequest) (*types.Invoice, error)
	UpdateInvoice(ctx context.Context, tenantID, id string, req *InvoiceUpdateRequest) (*types.Invoice, error)
	DeleteInvoice(ctx context.Context, tenantID, id string) error
}

type StorageInterface interface {
	CreateInvoice(ctx context.Context, i *types.Invoice) (*types.Invoice, error)
	GetInvoice(ctx context.Context, tenantID, id string) (*types.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, tenantID, id string) (*types.Invoice, error)
	ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error)
	UpdateInvoice(ctx context.Context, tenantID string, i *types.Invoice, paths []string) (*types.Invoice, error)
	DeleteInvoice(ctx context.Context, tenantID, id string) error
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	GetProject(ctx context.Context, tenantID, id string) (*types.Project, error)
	NextCode(ctx context.Context, tenantID string, seq storage.Sequence) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
