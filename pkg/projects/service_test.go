// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller, s StorageInterface) *Service {
	tx := NewMockTxInterface(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	return NewService(s, tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestServiceGetProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProject(gomock.Any(), "tenant-1", "project-1").Return(&types.Project{ID: "project-1"}, nil)
	mockStorage.EXPECT().ListMilestones(gomock.Any(), "project-1").Return([]*types.Milestone{{ID: "m-1"}, {ID: "m-2"}}, nil)
	mockStorage.EXPECT().ListProjectTasks(gomock.Any(), "project-1").Return(
		[]*types.Task{{ID: "t-1", MilestoneID: "m-1"}, {ID: "t-2", MilestoneID: "m-1"}},
		nil,
	)

	project, err := newTestService(ctrl, mockStorage).GetProject(context.Background(), "tenant-1", "project-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(project.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(project.Milestones))
	}
	if len(project.Milestones[0].Tasks) != 2 || len(project.Milestones[1].Tasks) != 0 {
		t.Errorf("tasks not grouped by milestone: %+v", project.Milestones)
	}
	if project.Milestones[1].Tasks == nil {
		t.Error("expected an empty task list, got nil")
	}
}

func TestServiceCreateProject(t *testing.T) {
	foreign := "customer-9"

	tests := []struct {
		name         string
		req          *ProjectRequest
		setupMocks   func(*MockStorageInterface)
		expectedCode string
		expectedErr  error
	}{
		{
			name:        "negative budget",
			req:         &ProjectRequest{Name: "Rollout", BudgetHours: decimal.NewFromInt(-1)},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "bad start date",
			req:         &ProjectRequest{Name: "Rollout", StartDate: "01/02/2026"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign customer",
			req:  &ProjectRequest{Name: "Rollout", CustomerID: &foreign},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", "customer-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "duplicate code",
			req:  &ProjectRequest{Name: "Rollout", Code: "PRJ-0001"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "generated code",
			req:  &ProjectRequest{Name: "Rollout", StartDate: "2026-01-05"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceProject).Return("PRJ-0003", nil)
				s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Project) (*types.Project, error) {
						if p.StartDate == nil || !p.StartDate.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)) {
							t.Errorf("unexpected start date %v", p.StartDate)
						}
						return p, nil
					},
				)
			},
			expectedCode: "PRJ-0003",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			project, err := newTestService(ctrl, mockStorage).CreateProject(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if project.Code != test.expectedCode {
				t.Errorf("expected code %s, got %s", test.expectedCode, project.Code)
			}
		})
	}
}

func TestServiceCreateMilestone(t *testing.T) {
	tests := []struct {
		name        string
		req         *MilestoneRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "blank name",
			req:         &MilestoneRequest{Name: " "},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign project",
			req:  &MilestoneRequest{Name: "Kickoff"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProject(gomock.Any(), "tenant-1", "project-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "created under project",
			req:  &MilestoneRequest{Name: " Kickoff ", TargetDate: "2026-03-01", SortOrder: 2},
			setupMocks: func(s *MockStorageInterface) {
				target := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
				s.EXPECT().GetProject(gomock.Any(), "tenant-1", "project-1").Return(&types.Project{ID: "project-1"}, nil)
				s.EXPECT().CreateMilestone(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, milestone *types.Milestone) (*types.Milestone, error) {
						if milestone.ProjectID != "project-1" || milestone.Name != "Kickoff" || milestone.SortOrder != 2 {
							t.Errorf("unexpected milestone %+v", milestone)
						}
						if milestone.TargetDate == nil || !milestone.TargetDate.Equal(target) {
							t.Errorf("unexpected target date %v", milestone.TargetDate)
						}
						milestone.ID = "m-1"
						return milestone, nil
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
			test.setupMocks(mockStorage)

			milestone, err := newTestService(ctrl, mockStorage).CreateMilestone(context.Background(), "tenant-1", "project-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if milestone.ID != "m-1" {
				t.Errorf("unexpected milestone %+v", milestone)
			}
		})
	}
}

func TestServiceUpdateMilestone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	name, order := "Delivery", 3

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateMilestone(gomock.Any(), "tenant-1", &types.Milestone{ID: "m-1", Name: "Delivery", SortOrder: 3}, []string{"name", "sort_order"}).
		Return(&types.Milestone{ID: "m-1", Name: "Delivery", SortOrder: 3}, nil)

	s := newTestService(ctrl, mockStorage)

	if _, err := s.UpdateMilestone(context.Background(), "tenant-1", "m-1", &MilestoneUpdateRequest{Name: &name, SortOrder: &order}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blank := "  "
	if _, err := s.UpdateMilestone(context.Background(), "tenant-1", "m-1", &MilestoneUpdateRequest{Name: &blank}); !errors.Is(err, types.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestServiceCreateTask(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "milestone of another project",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMilestone(gomock.Any(), "tenant-1", "m-1").Return(&types.Milestone{ID: "m-1", ProjectID: "project-2"}, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "created",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMilestone(gomock.Any(), "tenant-1", "m-1").Return(&types.Milestone{ID: "m-1", ProjectID: "project-1"}, nil)
				s.EXPECT().CreateTask(gomock.Any(), &types.Task{MilestoneID: "m-1", Name: "Design", EstimatedHours: decimal.NewFromInt(8)}).
					Return(&types.Task{ID: "t-1"}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			_, err := newTestService(ctrl, mockStorage).CreateTask(
				context.Background(), "tenant-1", "project-1", "m-1",
				&TaskRequest{Name: "Design", EstimatedHours: decimal.NewFromInt(8)},
			)
			if test.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Errorf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestServiceCreateTimesheet(t *testing.T) {
	tests := []struct {
		name        string
		req         *TimesheetRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "missing task",
			req:         &TimesheetRequest{EmployeeID: "emp-1", WorkDate: "2026-03-02"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "negative hours",
			req:         &TimesheetRequest{EmployeeID: "emp-1", TaskID: "t-1", WorkDate: "2026-03-02", Hours: decimal.NewFromInt(-2)},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign employee",
			req:  &TimesheetRequest{EmployeeID: "emp-9", TaskID: "t-1", WorkDate: "2026-03-02"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEmployee(gomock.Any(), "tenant-1", "emp-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "foreign task",
			req:  &TimesheetRequest{EmployeeID: "emp-1", TaskID: "t-9", WorkDate: "2026-03-02"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEmployee(gomock.Any(), "tenant-1", "emp-1").Return(&types.Employee{ID: "emp-1"}, nil)
				s.EXPECT().GetTask(gomock.Any(), "tenant-1", "t-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "created",
			req:  &TimesheetRequest{EmployeeID: "emp-1", TaskID: "t-1", WorkDate: "2026-03-02", Hours: decimal.RequireFromString("7.5")},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetEmployee(gomock.Any(), "tenant-1", "emp-1").Return(&types.Employee{ID: "emp-1"}, nil)
				s.EXPECT().GetTask(gomock.Any(), "tenant-1", "t-1").Return(&types.Task{ID: "t-1"}, nil)
				s.EXPECT().CreateTimesheet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ts *types.Timesheet) (*types.Timesheet, error) {
						if ts.TenantID != "tenant-1" || !ts.Hours.Equal(decimal.RequireFromString("7.5")) || ts.WorkDate.Day() != 2 {
							t.Errorf("unexpected timesheet %+v", ts)
						}
						return ts, nil
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
			test.setupMocks(mockStorage)

			_, err := newTestService(ctrl, mockStorage).CreateTimesheet(context.Background(), "tenant-1", test.req)
			if test.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Errorf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestServiceApproveTimesheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	approver := &types.User{ID: "user-1", TenantID: "tenant-1"}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ApproveTimesheet(gomock.Any(), "tenant-1", "ts-1", "user-1").
		Return(&types.Timesheet{ID: "ts-1", Status: types.TimesheetStatusApproved, ApprovedByUserID: &approver.ID}, nil)
	mockStorage.EXPECT().ApproveTimesheet(gomock.Any(), "tenant-1", "ts-9", "user-1").Return(nil, storage.ErrNotFound)

	s := newTestService(ctrl, mockStorage)

	ts, err := s.ApproveTimesheet(context.Background(), approver, "ts-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Status != types.TimesheetStatusApproved {
		t.Errorf("expected approved timesheet, got %s", ts.Status)
	}

	if _, err := s.ApproveTimesheet(context.Background(), approver, "ts-9"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
