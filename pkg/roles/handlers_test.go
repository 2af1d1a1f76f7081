// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		allowed        bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:    "list roles",
			method:  http.MethodGet,
			path:    "/api/v0/roles",
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListRoles(gomock.Any(), "tenant-1").Return([]*types.Role{{ID: "role-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list roles without permission",
			method:         http.MethodGet,
			path:           "/api/v0/roles",
			allowed:        false,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "list permissions",
			method:  http.MethodGet,
			path:    "/api/v0/permissions",
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListPermissions(gomock.Any()).Return([]*types.Permission{{ID: "crm.view"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "get foreign role",
			method:  http.MethodGet,
			path:    "/api/v0/roles/role-9",
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetRole(gomock.Any(), "tenant-1", "role-9").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "create without name",
			method:         http.MethodPost,
			path:           "/api/v0/roles",
			body:           `{"description": "x"}`,
			allowed:        true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "create duplicate",
			method:  http.MethodPost,
			path:    "/api/v0/roles",
			body:    `{"name": "Sales"}`,
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateRole(gomock.Any(), "tenant-1", &RoleRequest{Name: "Sales"}).Return(nil, types.Conflict("role exists"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "update",
			method:  http.MethodPut,
			path:    "/api/v0/roles/role-1",
			body:    `{"permission_ids": ["crm.view"]}`,
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateRole(gomock.Any(), "tenant-1", "role-1", gomock.Any()).Return(&types.Role{ID: "role-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "delete",
			method:  http.MethodDelete,
			path:    "/api/v0/roles/role-1",
			allowed: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteRole(gomock.Any(), "tenant-1", "role-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthorizer := authorization.NewMockAuthorizerInterface(ctrl)
			mockAuthorizer.EXPECT().Check(gomock.Any(), "user-1", gomock.Any()).Return(test.allowed, nil)
			test.setupMocks(mockService)

			logger := logging.NewNoopLogger()
			guard := authorization.NewMiddleware(mockAuthorizer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

			mux := chi.NewMux()
			NewAPI(mockService, guard, logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			req = req.WithContext(authentication.WithUser(req.Context(), &types.User{ID: "user-1", TenantID: "tenant-1", Active: true}))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
