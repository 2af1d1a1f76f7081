// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go

func ptr(s string) *string { return &s }

func TestServiceGetTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-9").Return(nil, storage.ErrNotFound)

	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	if _, err := s.GetTenant(context.Background(), "tenant-9"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceUpdateTenant(t *testing.T) {
	tests := []struct {
		name        string
		req         *TenantUpdateRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "blank name",
			req:         &TenantUpdateRequest{Name: ptr("  ")},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "name and timezone",
			req:  &TenantUpdateRequest{Name: ptr(" Acme Ltd "), Timezone: ptr("Europe/Athens")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpdateTenant(
					gomock.Any(),
					&types.Tenant{ID: "tenant-1", Name: "Acme Ltd", Timezone: "Europe/Athens"},
					[]string{"name", "timezone"},
				).Return(&types.Tenant{ID: "tenant-1", Name: "Acme Ltd"}, nil)
			},
		},
		{
			name: "nothing to change",
			req:  &TenantUpdateRequest{},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().UpdateTenant(gomock.Any(), &types.Tenant{ID: "tenant-1"}, []string{}).Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			tenant, err := s.UpdateTenant(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant.ID != "tenant-1" {
				t.Errorf("unexpected tenant %+v", tenant)
			}
		})
	}
}
