// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/account"
	"github.com/canonical/erp-service/pkg/authentication"
	"github.com/canonical/erp-service/pkg/crm"
)

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		token          string
		setupMocks     func(*authentication.MockTokenManagerInterface, *authentication.MockUserStorageInterface, *authorization.MockAuthorizerInterface, *crm.MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "status is public",
			path: "/api/v0/status",
			setupMocks: func(*authentication.MockTokenManagerInterface, *authentication.MockUserStorageInterface, *authorization.MockAuthorizerInterface, *crm.MockServiceInterface) {
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "domain api requires a token",
			path: "/api/v0/leads",
			setupMocks: func(*authentication.MockTokenManagerInterface, *authentication.MockUserStorageInterface, *authorization.MockAuthorizerInterface, *crm.MockServiceInterface) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "domain api with token",
			path:  "/api/v0/leads",
			token: "good",
			setupMocks: func(tokens *authentication.MockTokenManagerInterface, users *authentication.MockUserStorageInterface, authz *authorization.MockAuthorizerInterface, service *crm.MockServiceInterface) {
				tokens.EXPECT().Verify(gomock.Any(), "good", authentication.ACCESS_TOKEN).
					Return(&authentication.Claims{TenantID: "tenant-1", Type: authentication.ACCESS_TOKEN, RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, nil)
				users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", TenantID: "tenant-1", Active: true}, nil)
				authz.EXPECT().Check(gomock.Any(), "user-1", authorization.CRM_VIEW).Return(true, nil)
				service.EXPECT().ListLeads(gomock.Any(), "tenant-1").Return([]*types.Lead{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test")

			tokens := authentication.NewMockTokenManagerInterface(ctrl)
			users := authentication.NewMockUserStorageInterface(ctrl)
			authz := authorization.NewMockAuthorizerInterface(ctrl)
			service := crm.NewMockServiceInterface(ctrl)
			test.setupMocks(tokens, users, authz, service)

			guard := authorization.NewMiddleware(authz, tracer, monitor, logger)

			router := NewRouter(
				account.NewAPI(account.NewMockServiceInterface(ctrl), logger),
				[]EndpointsInterface{crm.NewAPI(service, guard, logger)},
				authentication.NewMiddleware(tokens, users, tracer, monitor, logger),
				db.NewMockDBClientInterface(ctrl),
				[]string{"*"},
				tracer,
				monitor,
				logger,
			)

			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.token != "" {
				req.Header.Set("Authorization", "Bearer "+test.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
