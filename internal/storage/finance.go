// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/erp-service/internal/types"
)

var invoiceColumns = []string{
	"id", "tenant_id", "customer_id", "project_id", "number", "status", "amount", "due_date", "paid_at", "created_at", "updated_at",
}

func scanInvoice(row sq.RowScanner) (*types.Invoice, error) {
	var i types.Invoice
	err := row.Scan(&i.ID, &i.TenantID, &i.CustomerID, &i.ProjectID, &i.Number, &i.Status, &i.Amount, &i.DueDate, &i.PaidAt, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvoice(ctx context.Context, i *types.Invoice) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvoice")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("invoices").
		Columns("id", "tenant_id", "customer_id", "project_id", "number", "status", "amount", "due_date", "paid_at").
		Values(id, i.TenantID, i.CustomerID, i.ProjectID, i.Number, i.Status, i.Amount, i.DueDate, i.PaidAt).
		Suffix(returning(invoiceColumns)).
		QueryRowContext(ctx)

	invoice, err := scanInvoice(row)
	if err != nil {
		return nil, writeError(err, "insert invoice")
	}

	return invoice, nil
}

func (s *Storage) getInvoice(ctx context.Context, tenantID, id string, lock bool) (*types.Invoice, error) {
	q := s.db.Statement(ctx).
		Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"id": id, "tenant_id": tenantID})

	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	i, err := scanInvoice(q.QueryRowContext(ctx))
	if err != nil {
		return nil, readError(err, "get invoice")
	}

	return i, nil
}

func (s *Storage) GetInvoice(ctx context.Context, tenantID, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoice")
	defer span.End()

	return s.getInvoice(ctx, tenantID, id, false)
}

// GetInvoiceForUpdate loads the invoice and locks its row until the transaction ends.
func (s *Storage) GetInvoiceForUpdate(ctx context.Context, tenantID, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvoiceForUpdate")
	defer span.End()

	return s.getInvoice(ctx, tenantID, id, true)
}

func (s *Storage) ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvoices")
	defer span.End()

	where := sq.Eq{"tenant_id": tenantID}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	if filter.CustomerID != "" {
		where["customer_id"] = filter.CustomerID
	}

	q := s.db.Statement(ctx).
		Select(invoiceColumns...).
		From("invoices").
		Where(where)

	if filter.Unpaid {
		q = q.Where(sq.NotEq{"status": types.InvoiceStatusPaid})
	}

	rows, err := q.OrderBy("number DESC").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return collect(rows, scanInvoice)
}

func (s *Storage) UpdateInvoice(ctx context.Context, tenantID string, i *types.Invoice, paths []string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvoice")
	defer span.End()

	updateMap := make(map[string]any)
	for _, p := range paths {
		switch p {
		case "status":
			updateMap["status"] = i.Status
		case "amount":
			updateMap["amount"] = i.Amount
		case "due_date":
			updateMap["due_date"] = i.DueDate
		case "paid_at":
			updateMap["paid_at"] = i.PaidAt
		case "project_id":
			updateMap["project_id"] = i.ProjectID
		}
	}

	if len(updateMap) == 0 {
		return s.GetInvoice(ctx, tenantID, i.ID)
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	row := s.db.Statement(ctx).
		Update("invoices").
		SetMap(updateMap).
		Where(sq.Eq{"id": i.ID, "tenant_id": tenantID}).
		Suffix(returning(invoiceColumns)).
		QueryRowContext(ctx)

	invoice, err := scanInvoice(row)
	if err != nil {
		return nil, writeError(err, "update invoice")
	}

	return invoice, nil
}

func (s *Storage) DeleteInvoice(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvoice")
	defer span.End()

	return execDelete(
		ctx,
		s.db.Statement(ctx).Delete("invoices").Where(sq.Eq{"id": id, "tenant_id": tenantID}),
		"invoice",
	)
}
