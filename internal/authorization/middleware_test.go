// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

func TestMiddlewareRequireAnyPermission(t *testing.T) {
	user := &types.User{ID: "user-1", TenantID: "tenant-1", Active: true}

	tests := []struct {
		name       string
		user       *types.User
		keys       []string
		setupMocks func(*MockAuthorizerInterface)
		expected   int
	}{
		{
			name:       "no user in context",
			user:       nil,
			keys:       []string{CRM_VIEW},
			setupMocks: func(*MockAuthorizerInterface) {},
			expected:   http.StatusUnauthorized,
		},
		{
			name: "allowed",
			user: user,
			keys: []string{CRM_VIEW},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().Check(gomock.Any(), "user-1", CRM_VIEW).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name: "any of several",
			user: user,
			keys: []string{CRM_VIEW, CRM_LEAD_CREATE},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().Check(gomock.Any(), "user-1", CRM_VIEW, CRM_LEAD_CREATE).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name: "denied",
			user: user,
			keys: []string{FINANCE_EDIT},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().Check(gomock.Any(), "user-1", FINANCE_EDIT).Return(false, nil)
			},
			expected: http.StatusForbidden,
		},
		{
			name: "check failure",
			user: user,
			keys: []string{FINANCE_EDIT},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().Check(gomock.Any(), "user-1", FINANCE_EDIT).Return(false, errors.New("db down"))
			},
			expected: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			test.setupMocks(mockAuthorizer)

			m := NewMiddleware(mockAuthorizer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/leads", nil)
			if test.user != nil {
				req = req.WithContext(authentication.WithUser(req.Context(), test.user))
			}
			rr := httptest.NewRecorder()

			m.RequireAnyPermission(test.keys...)(next).ServeHTTP(rr, req)

			if rr.Code != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, rr.Code)
			}
		})
	}
}
