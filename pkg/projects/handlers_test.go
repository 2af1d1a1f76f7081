// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
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
		permission     string
		allowed        bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:       "list customer projects",
			method:     http.MethodGet,
			path:       "/api/v0/projects?customer_id=customer-1",
			permission: authorization.PM_VIEW,
			allowed:    true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListProjects(gomock.Any(), "tenant-1", "customer-1").Return([]*types.Project{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create without permission",
			method:         http.MethodPost,
			path:           "/api/v0/projects",
			body:           `{"name": "Rollout"}`,
			permission:     authorization.PM_EDIT,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "create with bad date",
			method:         http.MethodPost,
			path:           "/api/v0/projects",
			body:           `{"name": "Rollout", "start_date": "tomorrow"}`,
			permission:     authorization.PM_EDIT,
			allowed:        true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "get foreign project",
			method:     http.MethodGet,
			path:       "/api/v0/projects/project-9",
			permission: authorization.PM_VIEW,
			allowed:    true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetProject(gomock.Any(), "tenant-1", "project-9").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:       "create task",
			method:     http.MethodPost,
			path:       "/api/v0/projects/project-1/milestones/m-1/tasks",
			body:       `{"name": "Design", "estimated_hours": 8}`,
			permission: authorization.PM_EDIT,
			allowed:    true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTask(gomock.Any(), "tenant-1", "project-1", "m-1", gomock.Any()).Return(&types.Task{ID: "t-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "list timesheets with bad range",
			method:         http.MethodGet,
			path:           "/api/v0/timesheets?from=yesterday",
			permission:     authorization.PM_VIEW,
			allowed:        true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "list timesheets of employee",
			method:     http.MethodGet,
			path:       "/api/v0/timesheets?employee_id=emp-1&from=2026-03-01",
			permission: authorization.PM_VIEW,
			allowed:    true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListTimesheets(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, f types.TimesheetFilter) ([]*types.Timesheet, error) {
						if f.EmployeeID != "emp-1" || f.From == nil || f.To != nil {
							t.Errorf("unexpected filter %+v", f)
						}
						return []*types.Timesheet{}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create timesheet without work date",
			method:         http.MethodPost,
			path:           "/api/v0/timesheets",
			body:           `{"employee_id": "emp-1", "task_id": "t-1", "hours": 4}`,
			permission:     authorization.PM_EDIT,
			allowed:        true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "approve timesheet",
			method:     http.MethodPost,
			path:       "/api/v0/timesheets/ts-1/approve",
			permission: authorization.PM_EDIT,
			allowed:    true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ApproveTimesheet(gomock.Any(), gomock.Any(), "ts-1").Return(&types.Timesheet{ID: "ts-1"}, nil)
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
			mockAuthorizer.EXPECT().Check(gomock.Any(), "user-1", test.permission).Return(test.allowed, nil)
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
