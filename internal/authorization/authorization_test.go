// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizerCheck(t *testing.T) {
	type input struct {
		granted []string
		keys    []string
	}

	tests := []struct {
		name     string
		input    input
		expected bool
	}{
		{
			name:     "granted key",
			input:    input{granted: []string{CRM_VIEW, CRM_EDIT}, keys: []string{CRM_VIEW}},
			expected: true,
		},
		{
			name:     "missing key",
			input:    input{granted: []string{CRM_VIEW}, keys: []string{FINANCE_EDIT}},
			expected: false,
		},
		{
			name:     "any of the keys",
			input:    input{granted: []string{HRM_VIEW}, keys: []string{CRM_VIEW, HRM_VIEW}},
			expected: true,
		},
		{
			name:     "no permissions",
			input:    input{granted: nil, keys: []string{AUTH_VIEW}},
			expected: false,
		},
		{
			name:     "union of several roles with duplicates",
			input:    input{granted: []string{CRM_VIEW, CRM_VIEW, PM_EDIT}, keys: []string{PM_EDIT}},
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").Return(ctx, trace.SpanFromContext(ctx))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Permissions").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().ListPermissionKeysByUserID(gomock.Any(), "user-1").Return(test.input.granted, nil)

			authorizer := NewAuthorizer(mockStorage, mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			allowed, err := authorizer.Check(ctx, "user-1", test.input.keys...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if allowed != test.expected {
				t.Errorf("expected %v, got %v", test.expected, allowed)
			}
		})
	}
}

func TestAuthorizerCheckWithoutKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	authorizer := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	allowed, err := authorizer.Check(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected a check without keys to allow")
	}
}

func TestAuthorizerReflectsRoleChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	authorizer := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	gomock.InOrder(
		mockStorage.EXPECT().ListPermissionKeysByUserID(gomock.Any(), "user-1").Return([]string{FINANCE_VIEW}, nil),
		mockStorage.EXPECT().ListPermissionKeysByUserID(gomock.Any(), "user-1").Return([]string{}, nil),
	)

	if allowed, _ := authorizer.Check(context.Background(), "user-1", FINANCE_VIEW); !allowed {
		t.Fatal("expected the first check to allow")
	}

	if allowed, _ := authorizer.Check(context.Background(), "user-1", FINANCE_VIEW); allowed {
		t.Fatal("expected the check after the role removal to deny")
	}
}

func TestAuthorizerStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	authorizer := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	dbErr := errors.New("connection refused")
	mockStorage.EXPECT().ListPermissionKeysByUserID(gomock.Any(), "user-1").Return(nil, dbErr)

	allowed, err := authorizer.Check(context.Background(), "user-1", CRM_VIEW)
	if !errors.Is(err, dbErr) {
		t.Errorf("expected storage error, got %v", err)
	}
	if allowed {
		t.Error("expected deny on error")
	}
}
