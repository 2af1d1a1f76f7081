// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// maxCodeAttempts bounds how many taken codes NextCode skips before giving up.
const maxCodeAttempts = 100

// Sequence describes a per tenant counter and the column its codes land in.
type Sequence struct {
	Kind   string
	Table  string
	Column string
	Prefix string
	Width  int
}

var (
	SequenceCustomer      = Sequence{Kind: "customer", Table: "customers", Column: "code", Prefix: "CUST-", Width: 4}
	SequenceProject       = Sequence{Kind: "project", Table: "projects", Column: "code", Prefix: "PRJ-", Width: 4}
	SequenceEmployee      = Sequence{Kind: "employee", Table: "employees", Column: "employee_code", Prefix: "EMP-", Width: 4}
	SequenceWarehouse     = Sequence{Kind: "warehouse", Table: "warehouses", Column: "code", Prefix: "WH-", Width: 4}
	SequenceSKU           = Sequence{Kind: "sku", Table: "skus", Column: "code", Prefix: "SKU-", Width: 4}
	SequencePurchaseOrder = Sequence{Kind: "purchase_order", Table: "purchase_orders", Column: "number", Prefix: "PO-", Width: 5}
	SequenceInvoice       = Sequence{Kind: "invoice", Table: "invoices", Column: "number", Prefix: "INV-", Width: 5}
)

// WithPrefix returns a copy of the sequence rendering codes with another prefix.
func (q Sequence) WithPrefix(prefix string) Sequence {
	q.Prefix = prefix
	return q
}

func (q Sequence) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", q.Prefix, q.Width, n)
}

// NextSequence atomically increments the tenant counter for seq and returns the new value.
// The first value continues from the rows the tenant already owns.
// The counter row stays locked until the surrounding transaction ends.
func (s *Storage) NextSequence(ctx context.Context, tenantID string, seq Sequence) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.NextSequence")
	defer span.End()

	existing := sq.Select("COUNT(*) + 1").
		From(seq.Table).
		Where(sq.Eq{"tenant_id": tenantID})

	var value int64
	err := s.db.Statement(ctx).
		Insert("tenant_sequences").
		Columns("tenant_id", "kind", "value").
		Values(tenantID, seq.Kind, sq.Expr("(?)", existing)).
		Suffix("ON CONFLICT (tenant_id, kind) DO UPDATE SET value = tenant_sequences.value + 1 RETURNING value").
		QueryRowContext(ctx).
		Scan(&value)
	if err != nil {
		return 0, writeError(err, "advance sequence "+seq.Kind)
	}

	return value, nil
}

// NextCode returns the next unused human readable code for seq, skipping codes set explicitly by callers.
func (s *Storage) NextCode(ctx context.Context, tenantID string, seq Sequence) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.NextCode")
	defer span.End()

	for range maxCodeAttempts {
		n, err := s.NextSequence(ctx, tenantID, seq)
		if err != nil {
			return "", err
		}

		code := seq.Format(n)

		var taken bool
		err = s.db.Statement(ctx).
			Select("1").
			Prefix("SELECT EXISTS (").
			From(seq.Table).
			Where(sq.Eq{"tenant_id": tenantID, seq.Column: code}).
			Suffix(")").
			QueryRowContext(ctx).
			Scan(&taken)
		if err != nil {
			return "", fmt.Errorf("failed to check code %s: %w", code, err)
		}

		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("no free %s code after %d attempts", seq.Kind, maxCodeAttempts)
}
