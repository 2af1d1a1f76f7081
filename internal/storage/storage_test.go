// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

func TestSequenceFormat(t *testing.T) {
	tests := []struct {
		name     string
		seq      Sequence
		value    int64
		expected string
	}{
		{name: "customer", seq: SequenceCustomer, value: 4, expected: "CUST-0004"},
		{name: "project", seq: SequenceProject, value: 12, expected: "PRJ-0012"},
		{name: "employee", seq: SequenceEmployee, value: 1, expected: "EMP-0001"},
		{name: "warehouse", seq: SequenceWarehouse, value: 3, expected: "WH-0003"},
		{name: "sku", seq: SequenceSKU, value: 250, expected: "SKU-0250"},
		{name: "purchase order", seq: SequencePurchaseOrder, value: 7, expected: "PO-00007"},
		{name: "invoice", seq: SequenceInvoice, value: 42, expected: "INV-00042"},
		{name: "overflowing width", seq: SequenceCustomer, value: 12345, expected: "CUST-12345"},
		{name: "custom prefix", seq: SequenceCustomer.WithPrefix("ACME"), value: 1, expected: "ACME0001"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.seq.Format(test.value); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestWithPrefixKeepsCounter(t *testing.T) {
	custom := SequenceCustomer.WithPrefix("ACME")

	if custom.Kind != SequenceCustomer.Kind || custom.Table != SequenceCustomer.Table {
		t.Fatal("expected prefixed sequence to share the customer counter")
	}
	if SequenceCustomer.Prefix != "CUST-" {
		t.Fatal("base sequence must not be modified")
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "duplicate", err: &pgconn.PgError{Code: pgErrCodeUniqueViolation}, expected: ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}, expected: ErrForeignKeyViolation},
		{name: "check", err: &pgconn.PgError{Code: pgErrCodeCheckViolation}, expected: ErrCheckViolation},
		{name: "sql no rows", err: sql.ErrNoRows, expected: ErrNotFound},
		{name: "pgx no rows", err: pgx.ErrNoRows, expected: ErrNotFound},
		{name: "wrapped duplicate", err: fmt.Errorf("scan: %w", &pgconn.PgError{Code: pgErrCodeUniqueViolation}), expected: ErrDuplicateKey},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := writeError(test.err, "insert thing"); !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestWriteErrorUnknown(t *testing.T) {
	cause := errors.New("connection reset")

	err := writeError(cause, "insert thing")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("unexpected classification: %v", err)
	}
}

func TestReadError(t *testing.T) {
	if err := readError(sql.ErrNoRows, "get thing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	cause := errors.New("boom")
	if err := readError(cause, "get thing"); !errors.Is(err, cause) || errors.Is(err, ErrNotFound) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestReturning(t *testing.T) {
	if got := returning([]string{"id", "name"}); got != "RETURNING id, name" {
		t.Errorf("unexpected clause %q", got)
	}

	got := prefixed("r", []string{"id", "name"})
	if strings.Join(got, ",") != "r.id,r.name" {
		t.Errorf("unexpected columns %v", got)
	}
}

func newTestStorage(t *testing.T) *Storage {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockDBClientInterface(ctrl)
	mockDB.EXPECT().Statement(gomock.Any()).Return(sq.StatementBuilder.PlaceholderFormat(sq.Dollar)).AnyTimes()

	return NewStorage(mockDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestRoleQueryIsTenantScoped(t *testing.T) {
	s := newTestStorage(t)

	query, args, err := s.roleQuery(context.Background()).
		Where(sq.Eq{"r.id": "role-1", "r.tenant_id": "tenant-1"}).
		ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "LEFT JOIN role_permissions rp ON rp.role_id = r.id") {
		t.Errorf("expected permission join, got %s", query)
	}
	if !strings.Contains(query, "GROUP BY r.id") {
		t.Errorf("expected grouping, got %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}
}

func TestTenantScopesRenderSubqueries(t *testing.T) {
	tests := []struct {
		name     string
		scope    sq.Sqlizer
		contains string
	}{
		{name: "milestone", scope: milestoneInTenant("tenant-1"), contains: "SELECT id FROM projects WHERE tenant_id = ?"},
		{name: "task", scope: taskInTenant("tenant-1"), contains: "JOIN projects p ON p.id = m.project_id WHERE p.tenant_id = ?"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, args, err := test.scope.ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(query, test.contains) {
				t.Errorf("expected %q in %q", test.contains, query)
			}
			if len(args) != 1 || args[0] != "tenant-1" {
				t.Errorf("unexpected args %v", args)
			}
		})
	}
}

func TestStockByWarehouseQuery(t *testing.T) {
	s := newTestStorage(t)

	query, args, err := s.stockByWarehouseQuery(context.Background(), "tenant-1", 10).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"LEFT JOIN stock_levels sl ON sl.warehouse_id = w.id",
		"WHERE w.tenant_id = $1",
		"GROUP BY w.id, w.name",
		"ORDER BY total_quantity DESC, w.name",
		"LIMIT 10",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected %q in %q", fragment, query)
		}
	}
	if len(args) != 1 || args[0] != "tenant-1" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestCountRecordsRejectsUnknownEntity(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.CountRecords(context.Background(), "tenant-1", Entity("users; DROP TABLE leads")); err == nil {
		t.Fatal("expected unknown entity to be rejected")
	}
}
