// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package finance -destination ./mock_interfaces.go -source=./interfaces.go

func passthroughTx(ctrl *gomock.Controller) *MockTxInterface {
	tx := NewMockTxInterface(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

func echoUpdate(_ context.Context, _ string, i *types.Invoice, _ []string) (*types.Invoice, error) {
	return i, nil
}

func TestServiceCreateInvoice(t *testing.T) {
	projectID := "project-1"

	tests := []struct {
		name         string
		req          *InvoiceRequest
		setupMocks   func(*MockStorageInterface, *events.MockPublisherInterface)
		expectedNo   string
		expectedPaid bool
		expectedErr  error
	}{
		{
			name:        "negative amount",
			req:         &InvoiceRequest{CustomerID: "customer-1", Amount: decimal.NewFromInt(-1)},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "unknown status",
			req:         &InvoiceRequest{CustomerID: "customer-1", Status: "void"},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign customer",
			req:  &InvoiceRequest{CustomerID: "customer-9"},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "foreign project",
			req:  &InvoiceRequest{CustomerID: "customer-1", ProjectID: &projectID},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-1").Return(&types.Customer{ID: "customer-1"}, nil)
				s.EXPECT().GetProject(gomock.Any(), "tenant-1", projectID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "draft with generated number",
			req:  &InvoiceRequest{CustomerID: "customer-1", ProjectID: &projectID, Amount: decimal.RequireFromString("1250.50")},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-1").Return(&types.Customer{ID: "customer-1"}, nil)
				s.EXPECT().GetProject(gomock.Any(), "tenant-1", projectID).Return(&types.Project{ID: projectID}, nil)
				s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceInvoice).Return("INV-00012", nil)
				s.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.Invoice) (*types.Invoice, error) {
						if i.Status != types.InvoiceStatusDraft || i.PaidAt != nil {
							t.Errorf("unexpected invoice %+v", i)
						}
						return i, nil
					},
				)
			},
			expectedNo: "INV-00012",
		},
		{
			name: "created paid",
			req:  &InvoiceRequest{CustomerID: "customer-1", Number: "INV-X", Status: types.InvoiceStatusPaid},
			setupMocks: func(s *MockStorageInterface, p *events.MockPublisherInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-1").Return(&types.Customer{ID: "customer-1"}, nil)
				s.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.Invoice) (*types.Invoice, error) {
						i.ID = "invoice-1"
						return i, nil
					},
				)
				p.EXPECT().Publish(gomock.Any(), "tenant-1", events.INVOICE_PAID, gomock.Any()).Return(nil)
			},
			expectedNo:   "INV-X",
			expectedPaid: true,
		},
		{
			name: "duplicate number",
			req:  &InvoiceRequest{CustomerID: "customer-1", Number: "INV-00001"},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-1").Return(&types.Customer{ID: "customer-1"}, nil)
				s.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockPublisher := events.NewMockPublisherInterface(ctrl)
			test.setupMocks(mockStorage, mockPublisher)

			s := NewService(mockStorage, passthroughTx(ctrl), mockPublisher, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			invoice, err := s.CreateInvoice(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invoice.Number != test.expectedNo {
				t.Errorf("expected number %s, got %s", test.expectedNo, invoice.Number)
			}
			if (invoice.PaidAt != nil) != test.expectedPaid {
				t.Errorf("unexpected paid_at %v", invoice.PaidAt)
			}
		})
	}
}

func TestServiceUpdateInvoice(t *testing.T) {
	paid := types.InvoiceStatusPaid
	sent := types.InvoiceStatusSent
	bogus := "void"
	paidAt := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         *InvoiceUpdateRequest
		setupMocks  func(*MockStorageInterface, *events.MockPublisherInterface)
		expectedErr error
	}{
		{
			name:        "invalid status",
			req:         &InvoiceUpdateRequest{Status: &bogus},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign invoice",
			req:  &InvoiceUpdateRequest{Status: &sent},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetInvoiceForUpdate(gomock.Any(), "tenant-1", "invoice-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "mark paid",
			req:  &InvoiceUpdateRequest{Status: &paid},
			setupMocks: func(s *MockStorageInterface, p *events.MockPublisherInterface) {
				s.EXPECT().GetInvoiceForUpdate(gomock.Any(), "tenant-1", "invoice-1").
					Return(&types.Invoice{ID: "invoice-1", Status: types.InvoiceStatusSent}, nil)
				s.EXPECT().UpdateInvoice(gomock.Any(), "tenant-1", gomock.Any(), []string{"status", "paid_at"}).DoAndReturn(
					func(ctx context.Context, tenantID string, i *types.Invoice, paths []string) (*types.Invoice, error) {
						if i.PaidAt == nil {
							t.Errorf("paid_at not stamped")
						}
						return echoUpdate(ctx, tenantID, i, paths)
					},
				)
				p.EXPECT().Publish(gomock.Any(), "tenant-1", events.INVOICE_PAID, gomock.Any()).Return(nil)
			},
		},
		{
			name: "already paid keeps stamp",
			req:  &InvoiceUpdateRequest{Status: &paid},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetInvoiceForUpdate(gomock.Any(), "tenant-1", "invoice-1").
					Return(&types.Invoice{ID: "invoice-1", Status: types.InvoiceStatusPaid, PaidAt: &paidAt}, nil)
				s.EXPECT().UpdateInvoice(gomock.Any(), "tenant-1", gomock.Any(), []string{"status"}).DoAndReturn(echoUpdate)
			},
		},
		{
			name: "reopened clears stamp",
			req:  &InvoiceUpdateRequest{Status: &sent},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetInvoiceForUpdate(gomock.Any(), "tenant-1", "invoice-1").
					Return(&types.Invoice{ID: "invoice-1", Status: types.InvoiceStatusPaid, PaidAt: &paidAt}, nil)
				s.EXPECT().UpdateInvoice(gomock.Any(), "tenant-1", gomock.Any(), []string{"status", "paid_at"}).DoAndReturn(
					func(ctx context.Context, tenantID string, i *types.Invoice, paths []string) (*types.Invoice, error) {
						if i.PaidAt != nil {
							t.Errorf("paid_at should be cleared")
						}
						return echoUpdate(ctx, tenantID, i, paths)
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockPublisher := events.NewMockPublisherInterface(ctrl)
			test.setupMocks(mockStorage, mockPublisher)

			s := NewService(mockStorage, passthroughTx(ctrl), mockPublisher, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			_, err := s.UpdateInvoice(context.Background(), "tenant-1", "invoice-1", test.req)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestServiceListInvoicesRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewService(NewMockStorageInterface(ctrl), passthroughTx(ctrl), events.NewNoopPublisher(logging.NewNoopLogger()), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if _, err := s.ListInvoices(context.Background(), "tenant-1", types.InvoiceFilter{Status: "void"}); !errors.Is(err, types.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
