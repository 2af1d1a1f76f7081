// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ListCustomers")
	defer span.End()

	return s.storage.ListCustomers(ctx, tenantID)
}

func (s *Service) GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.GetCustomer")
	defer span.End()

	return s.storage.GetCustomer(ctx, tenantID, id)
}

// CreateCustomer stores a customer, the code defaults to the next CUST- code of the tenant.
func (s *Service) CreateCustomer(ctx context.Context, tenantID string, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.CreateCustomer")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, types.Invalid("name is required")
	}

	c := &types.Customer{
		TenantID:        tenantID,
		Name:            name,
		Code:            strings.TrimSpace(req.Code),
		TaxID:           strings.TrimSpace(req.TaxID),
		BillingAddress:  strings.TrimSpace(req.BillingAddress),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
	}

	var created *types.Customer
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if c.Code == "" {
			code, err := s.storage.NextCode(ctx, tenantID, storage.SequenceCustomer)
			if err != nil {
				return err
			}
			c.Code = code
		}

		var err error
		created, err = s.storage.CreateCustomer(ctx, c)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("customer code %s already exists", c.Code)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, tenantID, id string, req *CustomerUpdateRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.UpdateCustomer")
	defer span.End()

	c := &types.Customer{ID: id}
	paths := make([]string, 0, 5)

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
		if c.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Code != nil {
		c.Code = strings.TrimSpace(*req.Code)
		if c.Code == "" {
			return nil, types.Invalid("code cannot be empty")
		}
		paths = append(paths, "code")
	}
	if req.TaxID != nil {
		c.TaxID = strings.TrimSpace(*req.TaxID)
		paths = append(paths, "tax_id")
	}
	if req.BillingAddress != nil {
		c.BillingAddress = strings.TrimSpace(*req.BillingAddress)
		paths = append(paths, "billing_address")
	}
	if req.ShippingAddress != nil {
		c.ShippingAddress = strings.TrimSpace(*req.ShippingAddress)
		paths = append(paths, "shipping_address")
	}

	customer, err := s.storage.UpdateCustomer(ctx, tenantID, c, paths)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("customer code %s already exists", c.Code)
	}

	return customer, err
}

func (s *Service) DeleteCustomer(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "crm.Service.DeleteCustomer")
	defer span.End()

	return s.storage.DeleteCustomer(ctx, tenantID, id)
}

// CustomerOverview gathers a customer with its projects and the invoices still to be paid.
func (s *Service) CustomerOverview(ctx context.Context, tenantID, id string) (*Overview, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.CustomerOverview")
	defer span.End()

	customer, err := s.storage.GetCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	projects, err := s.storage.ListProjects(ctx, tenantID, customer.ID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.storage.ListInvoices(ctx, tenantID, types.InvoiceFilter{CustomerID: customer.ID, Unpaid: true})
	if err != nil {
		return nil, err
	}

	return &Overview{Customer: customer, Projects: projects, UnpaidInvoices: invoices}, nil
}
