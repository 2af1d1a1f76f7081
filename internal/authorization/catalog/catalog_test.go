// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_interfaces.go -source=./interfaces.go

func TestDefault(t *testing.T) {
	permissions := Default()

	if len(permissions) != 14 {
		t.Fatalf("expected 14 permissions, got %d", len(permissions))
	}

	found := false
	for _, p := range permissions {
		if p.ID == "crm.lead.convert" {
			found = p.Module == "crm" && p.Action == "lead.convert"
		}
	}
	if !found {
		t.Error("expected crm.lead.convert in the default catalog")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expected  int
		expectErr bool
	}{
		{
			name:     "valid",
			data:     "permissions:\n  - {id: crm.view, module: crm, action: view}\n  - {id: crm.edit, module: crm, action: edit}\n",
			expected: 2,
		},
		{
			name:      "id mismatch",
			data:      "permissions:\n  - {id: crm.view, module: crm, action: edit}\n",
			expectErr: true,
		},
		{
			name:      "duplicate",
			data:      "permissions:\n  - {id: crm.view, module: crm, action: view}\n  - {id: crm.view, module: crm, action: view}\n",
			expectErr: true,
		},
		{
			name:      "malformed",
			data:      "permissions: [",
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			permissions, err := Parse([]byte(test.data))

			if (err != nil) != test.expectErr {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}
			if len(permissions) != test.expected {
				t.Errorf("expected %d permissions, got %d", test.expected, len(permissions))
			}
		})
	}
}

func TestSeed(t *testing.T) {
	permissions := []*types.Permission{
		{ID: "crm.view", Module: "crm", Action: "view"},
		{ID: "crm.edit", Module: "crm", Action: "edit"},
		{ID: "pm.view", Module: "pm", Action: "view"},
	}

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   int
		expectErr  bool
	}{
		{
			name: "empty database",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().InsertPermission(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
			},
			expected: 3,
		},
		{
			name: "already seeded",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().InsertPermission(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
			},
			expected: 0,
		},
		{
			name: "partially seeded",
			setupMocks: func(s *MockStorageInterface) {
				gomock.InOrder(
					s.EXPECT().InsertPermission(gomock.Any(), permissions[0]).Return(false, nil),
					s.EXPECT().InsertPermission(gomock.Any(), permissions[1]).Return(true, nil),
					s.EXPECT().InsertPermission(gomock.Any(), permissions[2]).Return(false, nil),
				)
			},
			expected: 1,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockStorageInterface) {
				gomock.InOrder(
					s.EXPECT().InsertPermission(gomock.Any(), permissions[0]).Return(true, nil),
					s.EXPECT().InsertPermission(gomock.Any(), permissions[1]).Return(false, errors.New("relation does not exist")),
				)
			},
			expected:  1,
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			seeder := NewSeeder(mockStorage, permissions, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			created, err := seeder.Seed(context.Background())
			if (err != nil) != test.expectErr {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}
			if created != test.expected {
				t.Errorf("expected %d created, got %d", test.expected, created)
			}
		})
	}
}
