// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		allowed        *bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "current without any permission",
			method: http.MethodGet,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Code: "ACME"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update denied",
			method:         http.MethodPatch,
			body:           `{"name": "Acme"}`,
			allowed:        new(bool),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "update with unknown timezone",
			method:         http.MethodPatch,
			body:           `{"timezone": "Mars/Olympus"}`,
			allowed:        allow(),
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "update",
			method:  http.MethodPatch,
			body:    `{"name": "Acme"}`,
			allowed: allow(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateTenant(gomock.Any(), "tenant-1", &TenantUpdateRequest{Name: ptr("Acme")}).Return(&types.Tenant{ID: "tenant-1", Name: "Acme"}, nil)
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
			if test.allowed != nil {
				mockAuthorizer.EXPECT().Check(gomock.Any(), "user-1", authorization.AUTH_EDIT).Return(*test.allowed, nil)
			}
			test.setupMocks(mockService)

			logger := logging.NewNoopLogger()
			guard := authorization.NewMiddleware(mockAuthorizer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

			mux := chi.NewMux()
			NewAPI(mockService, guard, logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(test.method, "/api/v0/organizations/current", strings.NewReader(test.body))
			req = req.WithContext(authentication.WithUser(req.Context(), &types.User{ID: "user-1", TenantID: "tenant-1", Active: true}))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func allow() *bool {
	v := true
	return &v
}
