// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/erp-service/internal/types"
)

var leadColumns = []string{
	"id", "tenant_id", "assigned_to_user_id", "company_name", "contact_name", "email", "phone",
	"status", "stage", "value", "converted_customer_id", "converted_project_id", "created_at", "updated_at",
}

func scanLead(row sq.RowScanner) (*types.Lead, error) {
	var l types.Lead
	err := row.Scan(
		&l.ID, &l.TenantID, &l.AssignedToUserID, &l.CompanyName, &l.ContactName, &l.Email, &l.Phone,
		&l.Status, &l.Stage, &l.Value, &l.ConvertedCustomerID, &l.ConvertedProjectID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

var customerColumns = []string{
	"id", "tenant_id", "name", "code", "tax_id", "billing_address", "shipping_address", "source_lead_id", "created_at", "updated_at",
}

func scanCustomer(row sq.RowScanner) (*types.Customer, error) {
	var c types.Customer
	err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Code, &c.TaxID, &c.BillingAddress, &c.ShippingAddress, &c.SourceLeadID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateLead(ctx context.Context, l *types.Lead) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLead")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("leads").
		Columns("id", "tenant_id", "assigned_to_user_id", "company_name", "contact_name", "email", "phone", "status", "stage", "value").
		Values(id, l.TenantID, l.AssignedToUserID, l.CompanyName, l.ContactName, l.Email, l.Phone, string(l.Status), l.Stage, l.Value).
		Suffix(returning(leadColumns)).
		QueryRowContext(ctx)

	lead, err := scanLead(row)
	if err != nil {
		return nil, writeError(err, "insert lead")
	}

	return lead, nil
}

func (s *Storage) GetLead(ctx context.Context, tenantID, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLead")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	l, err := scanLead(row)
	if err != nil {
		return nil, readError(err, "get lead")
	}

	return l, nil
}

// GetLeadForUpdate loads the lead and locks its row until the transaction ends.
func (s *Storage) GetLeadForUpdate(ctx context.Context, tenantID, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLeadForUpdate")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	l, err := scanLead(row)
	if err != nil {
		return nil, readError(err, "lock lead")
	}

	return l, nil
}

func (s *Storage) ListLeads(ctx context.Context, tenantID string) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeads")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return collect(rows, scanLead)
}

func (s *Storage) UpdateLead(ctx context.Context, tenantID string, l *types.Lead, paths []string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLead")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "company_name":
			updateMap["company_name"] = l.CompanyName
		case "contact_name":
			updateMap["contact_name"] = l.ContactName
		case "email":
			updateMap["email"] = l.Email
		case "phone":
			updateMap["phone"] = l.Phone
		case "status":
			updateMap["status"] = string(l.Status)
		case "stage":
			updateMap["stage"] = l.Stage
		case "value":
			updateMap["value"] = l.Value
		case "assigned_to_user_id":
			updateMap["assigned_to_user_id"] = l.AssignedToUserID
		}
	}

	if len(updateMap) == 0 {
		return s.GetLead(ctx, tenantID, l.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("leads").
		SetMap(updateMap).
		Where(sq.Eq{"id": l.ID, "tenant_id": tenantID}).
		Suffix(returning(leadColumns)).
		QueryRowContext(ctx)

	lead, err := scanLead(row)
	if err != nil {
		return nil, writeError(err, "update lead")
	}

	return lead, nil
}

// MarkLeadConverted closes the lead as won and records the records it produced.
func (s *Storage) MarkLeadConverted(ctx context.Context, tenantID, leadID, customerID, projectID string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkLeadConverted")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("leads").
		Set("status", string(types.LeadClosedWon)).
		Set("converted_customer_id", customerID).
		Set("converted_project_id", projectID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": leadID, "tenant_id": tenantID, "converted_customer_id": nil}).
		Suffix(returning(leadColumns)).
		QueryRowContext(ctx)

	lead, err := scanLead(row)
	if err != nil {
		return nil, writeError(err, "mark lead converted")
	}

	return lead, nil
}

func (s *Storage) DeleteLead(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLead")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("leads").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"lead",
	)
}

func (s *Storage) CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("customers").
		Columns("id", "tenant_id", "name", "code", "tax_id", "billing_address", "shipping_address", "source_lead_id").
		Values(id, c.TenantID, c.Name, c.Code, c.TaxID, c.BillingAddress, c.ShippingAddress, c.SourceLeadID).
		Suffix(returning(customerColumns)).
		QueryRowContext(ctx)

	customer, err := scanCustomer(row)
	if err != nil {
		return nil, writeError(err, "insert customer")
	}

	return customer, nil
}

func (s *Storage) GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomer")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	c, err := scanCustomer(row)
	if err != nil {
		return nil, readError(err, "get customer")
	}

	return c, nil
}

func (s *Storage) ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("code").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return collect(rows, scanCustomer)
}

func (s *Storage) UpdateCustomer(ctx context.Context, tenantID string, c *types.Customer, paths []string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCustomer")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "code":
			updateMap["code"] = c.Code
		case "tax_id":
			updateMap["tax_id"] = c.TaxID
		case "billing_address":
			updateMap["billing_address"] = c.BillingAddress
		case "shipping_address":
			updateMap["shipping_address"] = c.ShippingAddress
		}
	}

	if len(updateMap) == 0 {
		return s.GetCustomer(ctx, tenantID, c.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("customers").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID, "tenant_id": tenantID}).
		Suffix(returning(customerColumns)).
		QueryRowContext(ctx)

	customer, err := scanCustomer(row)
	if err != nil {
		return nil, writeError(err, "update customer")
	}

	return customer, nil
}

func (s *Storage) DeleteCustomer(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCustomer")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("customers").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"customer",
	)
}
