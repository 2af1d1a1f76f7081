// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package crm -destination ./mock_interfaces.go -source=./interfaces.go

func passthroughTx(ctrl *gomock.Controller) *MockTxInterface {
	tx := NewMockTxInterface(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

func TestCustomerCodePrefix(t *testing.T) {
	tests := []struct {
		company  string
		expected string
	}{
		{company: "Acme Corporation", expected: "ACME"},
		{company: "ab", expected: "AB"},
		{company: "A B Co", expected: "AB"},
		{company: "", expected: "C"},
		{company: "    Spaces", expected: "C"},
		{company: "Ümlaut GmbH", expected: "ÜMLA"},
	}

	for _, test := range tests {
		t.Run(test.company, func(t *testing.T) {
			if got := CustomerCodePrefix(test.company); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestServiceConvertLead(t *testing.T) {
	customerID := "customer-1"

	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *events.MockPublisherInterface)
		expectedErr error
	}{
		{
			name: "foreign lead",
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetLeadForUpdate(gomock.Any(), "tenant-1", "lead-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "already converted",
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetLeadForUpdate(gomock.Any(), "tenant-1", "lead-1").
					Return(&types.Lead{ID: "lead-1", Status: types.LeadClosedWon, ConvertedCustomerID: &customerID}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "customer creation fails",
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().GetLeadForUpdate(gomock.Any(), "tenant-1", "lead-1").Return(&types.Lead{ID: "lead-1", CompanyName: "Acme"}, nil)
				s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceCustomer.WithPrefix("ACME")).Return("ACME0001", nil)
				s.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "converted",
			setupMocks: func(s *MockStorageInterface, p *events.MockPublisherInterface) {
				lead := &types.Lead{ID: "lead-1", TenantID: "tenant-1", CompanyName: "Acme Corp", Status: types.LeadQualified}

				gomock.InOrder(
					s.EXPECT().GetLeadForUpdate(gomock.Any(), "tenant-1", "lead-1").Return(lead, nil),
					s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceCustomer.WithPrefix("ACME")).Return("ACME0004", nil),
					s.EXPECT().CreateCustomer(gomock.Any(), &types.Customer{TenantID: "tenant-1", Name: "Acme Corp", Code: "ACME0004", SourceLeadID: &lead.ID}).
						Return(&types.Customer{ID: "customer-1", Code: "ACME0004"}, nil),
					s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceProject).Return("PRJ-0002", nil),
					s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, p *types.Project) (*types.Project, error) {
							if p.Name != "Project: Acme Corp" || p.Code != "PRJ-0002" || p.Status != types.ProjectStatusActive {
								t.Errorf("unexpected project %+v", p)
							}
							if p.CustomerID == nil || *p.CustomerID != "customer-1" {
								t.Errorf("project not linked to customer: %+v", p)
							}
							p.ID = "project-1"
							return p, nil
						},
					),
					s.EXPECT().MarkLeadConverted(gomock.Any(), "tenant-1", "lead-1", "customer-1", "project-1").
						Return(&types.Lead{ID: "lead-1", Status: types.LeadClosedWon, ConvertedCustomerID: &customerID}, nil),
				)
				p.EXPECT().Publish(gomock.Any(), "tenant-1", events.LEAD_CONVERTED, LeadConverted{LeadID: "lead-1", CustomerID: "customer-1", ProjectID: "project-1"}).Return(nil)
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

			result, err := s.ConvertLead(context.Background(), "tenant-1", "lead-1")
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Lead.Status != types.LeadClosedWon || !result.Lead.Converted() {
				t.Errorf("lead not converted: %+v", result.Lead)
			}
			if result.Customer.Code != "ACME0004" {
				t.Errorf("unexpected customer code %s", result.Customer.Code)
			}
		})
	}
}

func TestServiceCreateCustomer(t *testing.T) {
	tests := []struct {
		name         string
		req          *CustomerRequest
		setupMocks   func(*MockStorageInterface)
		expectedCode string
		expectedErr  error
	}{
		{
			name:        "missing name",
			req:         &CustomerRequest{Name: " "},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "generated code",
			req:  &CustomerRequest{Name: "Globex"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceCustomer).Return("CUST-0004", nil)
				s.EXPECT().CreateCustomer(gomock.Any(), &types.Customer{TenantID: "tenant-1", Name: "Globex", Code: "CUST-0004"}).
					DoAndReturn(func(_ context.Context, c *types.Customer) (*types.Customer, error) { return c, nil })
			},
			expectedCode: "CUST-0004",
		},
		{
			name: "explicit code",
			req:  &CustomerRequest{Name: "Globex", Code: " GLX "},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *types.Customer) (*types.Customer, error) { return c, nil })
			},
			expectedCode: "GLX",
		},
		{
			name: "duplicate explicit code",
			req:  &CustomerRequest{Name: "Globex", Code: "GLX"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			s := NewService(mockStorage, passthroughTx(ctrl), events.NewNoopPublisher(logging.NewNoopLogger()), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			customer, err := s.CreateCustomer(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if customer.Code != test.expectedCode {
				t.Errorf("expected code %s, got %s", test.expectedCode, customer.Code)
			}
		})
	}
}

func TestServiceCreateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &types.User{ID: "user-1", TenantID: "tenant-1"}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *types.Lead) (*types.Lead, error) {
			if l.Status != types.LeadProspect {
				t.Errorf("expected default status, got %s", l.Status)
			}
			if l.AssignedToUserID == nil || *l.AssignedToUserID != "user-1" {
				t.Errorf("expected lead assigned to caller")
			}
			return l, nil
		},
	)

	s := NewService(mockStorage, passthroughTx(ctrl), events.NewNoopPublisher(logging.NewNoopLogger()), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if _, err := s.CreateLead(context.Background(), caller, &LeadRequest{CompanyName: " Acme "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.CreateLead(context.Background(), caller, &LeadRequest{CompanyName: "Acme", Status: "won"}); !errors.Is(err, types.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestServiceUpdateLead(t *testing.T) {
	str := func(v string) *string { return &v }

	tests := []struct {
		name        string
		req         *LeadUpdateRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "assign to tenant user",
			req:  &LeadUpdateRequest{AssignedToUserID: str("user-2")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-2").Return(&types.User{ID: "user-2", TenantID: "tenant-1"}, nil)
				s.EXPECT().UpdateLead(gomock.Any(), "tenant-1", &types.Lead{ID: "lead-1", AssignedToUserID: str("user-2")}, []string{"assigned_to_user_id"}).
					Return(&types.Lead{ID: "lead-1", AssignedToUserID: str("user-2")}, nil)
			},
		},
		{
			name: "assign to user of another tenant",
			req:  &LeadUpdateRequest{AssignedToUserID: str("user-of-tenant-2")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-of-tenant-2").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "unassign",
			req:  &LeadUpdateRequest{AssignedToUserID: str("")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpdateLead(gomock.Any(), "tenant-1", &types.Lead{ID: "lead-1"}, []string{"assigned_to_user_id"}).Return(&types.Lead{ID: "lead-1"}, nil)
			},
		},
		{
			name:        "blank company name",
			req:         &LeadUpdateRequest{CompanyName: str("  ")},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			s := NewService(mockStorage, passthroughTx(ctrl), events.NewNoopPublisher(logging.NewNoopLogger()), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			_, err := s.UpdateLead(context.Background(), "tenant-1", "lead-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceCustomerOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-1").Return(&types.Customer{ID: "customer-1"}, nil)
	mockStorage.EXPECT().ListProjects(gomock.Any(), "tenant-1", "customer-1").Return([]*types.Project{{ID: "project-1"}}, nil)
	mockStorage.EXPECT().ListInvoices(gomock.Any(), "tenant-1", types.InvoiceFilter{CustomerID: "customer-1", Unpaid: true}).
		Return([]*types.Invoice{{ID: "invoice-1", Status: types.InvoiceStatusSent}}, nil)

	s := NewService(mockStorage, passthroughTx(ctrl), events.NewNoopPublisher(logging.NewNoopLogger()), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	overview, err := s.CustomerOverview(context.Background(), "tenant-1", "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(overview.Projects) != 1 || len(overview.UnpaidInvoices) != 1 {
		t.Errorf("unexpected overview %+v", overview)
	}
}
