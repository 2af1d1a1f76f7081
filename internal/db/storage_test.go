// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
)

//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_interfaces.go -source=./interfaces.go

type recordingRunner struct {
	queries []string
}

func (r *recordingRunner) Exec(query string, args ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return driver.RowsAffected(1), nil
}

func (r *recordingRunner) Query(query string, args ...interface{}) (*sql.Rows, error) {
	r.queries = append(r.queries, query)
	return nil, errors.New("not supported")
}

func TestStatementOutsideTransactionUsesRunner(t *testing.T) {
	runner := new(recordingRunner)
	d := &DBClient{dbRunner: runner, logger: logging.NewNoopLogger()}

	if _, err := d.Statement(context.Background()).Delete("leads").Where("id = ?", "lead-1").Exec(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runner.queries) != 1 || runner.queries[0] != "DELETE FROM leads WHERE id = $1" {
		t.Errorf("unexpected queries %v", runner.queries)
	}
}

func TestAfterCommitWithoutTransactionRunsImmediately(t *testing.T) {
	called := false
	AfterCommit(context.Background(), func() { called = true })

	if !called {
		t.Fatal("expected callback to run immediately")
	}
}

func TestWithTxWithoutQueries(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	called := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if lazyTxFromContext(ctx) == nil {
			t.Fatal("expected lazy transaction in context")
		}
		AfterCommit(ctx, func() { called = true })
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected after commit callback to run")
	}
}

func TestWithTxRollbackDropsCallbacks(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}
	fnErr := errors.New("boom")

	called := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		AfterCommit(ctx, func() { called = true })
		return fnErr
	})

	if !errors.Is(err, fnErr) {
		t.Fatalf("expected %v, got %v", fnErr, err)
	}
	if called {
		t.Fatal("callback must not run on failure")
	}
}

func TestWithTxJoinsOuterTransaction(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	var outer, inner *lazyTx
	innerCalled := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		outer = lazyTxFromContext(ctx)
		return d.WithTx(ctx, func(ctx context.Context) error {
			inner = lazyTxFromContext(ctx)
			AfterCommit(ctx, func() { innerCalled = true })
			if innerCalled {
				t.Fatal("inner callback ran before the outer transaction finished")
			}
			return nil
		})
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outer == nil || outer != inner {
		t.Fatal("expected nested call to join the outer transaction")
	}
	if !innerCalled {
		t.Fatal("expected callback to run after outer commit")
	}
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		setupMocks func(*MockDBClientInterface)
	}{
		{
			name:       "read requests skip transaction",
			method:     http.MethodGet,
			status:     http.StatusOK,
			setupMocks: func(*MockDBClientInterface) {},
		},
		{
			name:   "write requests run in transaction",
			method: http.MethodPost,
			status: http.StatusCreated,
			setupMocks: func(m *MockDBClientInterface) {
				m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					},
				)
			},
		},
		{
			name:   "failed write requests report rollback",
			method: http.MethodDelete,
			status: http.StatusConflict,
			setupMocks: func(m *MockDBClientInterface) {
				m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						if err := fn(ctx); err == nil {
							t.Error("expected error for failed request")
						}
						return nil
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockDBClientInterface(ctrl)
			test.setupMocks(mockDB)

			handler := TransactionMiddleware(mockDB, logging.NewNoopLogger())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(test.status)
				}),
			)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(test.method, "/api/v0/leads", nil))

			if rr.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, rr.Code)
			}
		})
	}
}
