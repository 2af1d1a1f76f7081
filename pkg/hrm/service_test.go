// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package hrm -destination ./mock_interfaces.go -source=./interfaces.go

func passthroughTx(ctrl *gomock.Controller) *MockTxInterface {
	tx := NewMockTxInterface(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

func newTestService(ctrl *gomock.Controller, s StorageInterface, p events.PublisherInterface) *Service {
	return NewService(s, passthroughTx(ctrl), p, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestPayrollItem(t *testing.T) {
	tests := []struct {
		name      string
		employee  *types.Employee
		hours     decimal.Decimal
		timesheet string
		total     string
	}{
		{
			name:      "salary only",
			employee:  &types.Employee{ID: "e1", BaseSalaryMonthly: decimal.RequireFromString("3000")},
			hours:     decimal.Zero,
			timesheet: "0",
			total:     "3000",
		},
		{
			name:      "salary and hours",
			employee:  &types.Employee{ID: "e2", BaseSalaryMonthly: decimal.RequireFromString("4500"), HourlyRate: decimal.RequireFromString("25.50")},
			hours:     decimal.RequireFromString("10"),
			timesheet: "255",
			total:     "4755",
		},
		{
			name:      "rounded to cents",
			employee:  &types.Employee{ID: "e3", HourlyRate: decimal.RequireFromString("33.333")},
			hours:     decimal.RequireFromString("1.5"),
			timesheet: "50",
			total:     "50",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			item := PayrollItem(test.employee, test.hours)

			if item.EmployeeID != test.employee.ID || item.Status != types.PayrollItemStatusPending {
				t.Errorf("unexpected item %+v", item)
			}
			if !item.TimesheetAmount.Equal(decimal.RequireFromString(test.timesheet)) {
				t.Errorf("expected timesheet amount %s, got %s", test.timesheet, item.TimesheetAmount)
			}
			if !item.TotalAmount.Equal(decimal.RequireFromString(test.total)) {
				t.Errorf("expected total %s, got %s", test.total, item.TotalAmount)
			}
		})
	}
}

func TestServiceGeneratePayroll(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		req            *PayrollRequest
		setupMocks     func(*MockStorageInterface, *events.MockPublisherInterface)
		expectedPeriod string
		expectedTotals []string
		expectedErr    error
	}{
		{
			name:        "end before start",
			req:         &PayrollRequest{PeriodStart: "2024-02-01", PeriodEnd: "2024-01-31"},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "malformed date",
			req:         &PayrollRequest{PeriodStart: "2024-13-01", PeriodEnd: "2024-01-31"},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "missing end",
			req:         &PayrollRequest{PeriodStart: "2024-01-01"},
			setupMocks:  func(*MockStorageInterface, *events.MockPublisherInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "storage failure",
			req:  &PayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31"},
			setupMocks: func(s *MockStorageInterface, _ *events.MockPublisherInterface) {
				s.EXPECT().ListEmployees(gomock.Any(), "tenant-1", true).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("boom"),
		},
		{
			name: "two employees",
			req:  &PayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31"},
			setupMocks: func(s *MockStorageInterface, p *events.MockPublisherInterface) {
				employees := []*types.Employee{
					{ID: "e1", BaseSalaryMonthly: decimal.RequireFromString("3000"), Active: true},
					{ID: "e2", BaseSalaryMonthly: decimal.RequireFromString("4500"), HourlyRate: decimal.RequireFromString("20"), Active: true},
				}

				gomock.InOrder(
					s.EXPECT().ListEmployees(gomock.Any(), "tenant-1", true).Return(employees, nil),
					s.EXPECT().ApprovedHoursByEmployee(gomock.Any(), "tenant-1", start, end).
						Return(map[string]decimal.Decimal{"e2": decimal.RequireFromString("7.5")}, nil),
					s.EXPECT().CreatePayrollRun(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, r *types.PayrollRun) (*types.PayrollRun, error) {
							if r.Status != types.PayrollRunStatusDraft || !r.PeriodStart.Equal(start) || !r.PeriodEnd.Equal(end) {
								t.Errorf("unexpected run %+v", r)
							}
							r.ID = "run-1"
							return r, nil
						},
					),
					s.EXPECT().CreatePayrollItems(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, items []*types.PayrollItem) ([]*types.PayrollItem, error) {
							for _, i := range items {
								if i.PayrollRunID != "run-1" {
									t.Errorf("item not linked to run: %+v", i)
								}
							}
							return items, nil
						},
					),
				)
				p.EXPECT().Publish(gomock.Any(), "tenant-1", events.PAYROLL_GENERATED, gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, payload any) error {
						generated, ok := payload.(PayrollGenerated)
						if !ok || generated.RunID != "run-1" || generated.Items != 2 || !generated.TotalAmount.Equal(decimal.RequireFromString("7650")) {
							t.Errorf("unexpected payload %+v", payload)
						}
						return nil
					},
				)
			},
			expectedPeriod: "2024-01",
			expectedTotals: []string{"3000", "4650"},
		},
		{
			name: "publish failure is not fatal",
			req:  &PayrollRequest{Period: "January", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31"},
			setupMocks: func(s *MockStorageInterface, p *events.MockPublisherInterface) {
				s.EXPECT().ListEmployees(gomock.Any(), "tenant-1", true).Return([]*types.Employee{}, nil)
				s.EXPECT().ApprovedHoursByEmployee(gomock.Any(), "tenant-1", start, end).Return(map[string]decimal.Decimal{}, nil)
				s.EXPECT().CreatePayrollRun(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.PayrollRun) (*types.PayrollRun, error) {
						r.ID = "run-2"
						return r, nil
					},
				)
				s.EXPECT().CreatePayrollItems(gomock.Any(), []*types.PayrollItem{}).Return([]*types.PayrollItem{}, nil)
				p.EXPECT().Publish(gomock.Any(), "tenant-1", events.PAYROLL_GENERATED, gomock.Any()).Return(errors.New("nats down"))
			},
			expectedPeriod: "January",
			expectedTotals: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockPublisher := events.NewMockPublisherInterface(ctrl)
			test.setupMocks(mockStorage, mockPublisher)

			run, err := newTestService(ctrl, mockStorage, mockPublisher).GeneratePayroll(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v", test.expectedErr)
				}
				if errors.Is(test.expectedErr, types.ErrValidation) && !errors.Is(err, types.ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if run.Period != test.expectedPeriod {
				t.Errorf("expected period %s, got %s", test.expectedPeriod, run.Period)
			}
			if len(run.Items) != len(test.expectedTotals) {
				t.Fatalf("expected %d items, got %d", len(test.expectedTotals), len(run.Items))
			}
			for i, total := range test.expectedTotals {
				if !run.Items[i].TotalAmount.Equal(decimal.RequireFromString(total)) {
					t.Errorf("item %d: expected total %s, got %s", i, total, run.Items[i].TotalAmount)
				}
			}
		})
	}
}

func TestServiceGetPayrollRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetPayrollRun(gomock.Any(), "tenant-1", "run-1").Return(&types.PayrollRun{ID: "run-1"}, nil)
	mockStorage.EXPECT().ListPayrollItems(gomock.Any(), "run-1").Return([]*types.PayrollItem{{ID: "item-1"}}, nil)

	run, err := newTestService(ctrl, mockStorage, events.NewNoopPublisher(logging.NewNoopLogger())).GetPayrollRun(context.Background(), "tenant-1", "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Items) != 1 {
		t.Errorf("expected items to be loaded, got %+v", run.Items)
	}
}

func TestServiceCreateEmployee(t *testing.T) {
	userID := "user-9"

	tests := []struct {
		name         string
		req          *EmployeeRequest
		setupMocks   func(*MockStorageInterface)
		expectedCode string
		expectedErr  error
	}{
		{
			name:        "missing name",
			req:         &EmployeeRequest{},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "negative salary",
			req:         &EmployeeRequest{FullName: "Ada", BaseSalaryMonthly: decimal.RequireFromString("-1")},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "negative rate",
			req:         &EmployeeRequest{FullName: "Ada", HourlyRate: decimal.RequireFromString("-0.01")},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "foreign user",
			req:  &EmployeeRequest{FullName: "Ada", UserID: &userID},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "generated code",
			req:  &EmployeeRequest{FullName: "Ada", UserID: &userID, HireDate: "2024-03-01"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().NextCode(gomock.Any(), "tenant-1", storage.SequenceEmployee).Return("EMP-0003", nil)
				s.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.Employee) (*types.Employee, error) {
						if !e.Active || e.HireDate == nil || e.UserID == nil || *e.UserID != userID {
							t.Errorf("unexpected employee %+v", e)
						}
						return e, nil
					},
				)
			},
			expectedCode: "EMP-0003",
		},
		{
			name: "duplicate explicit code",
			req:  &EmployeeRequest{FullName: "Ada", Code: "EMP-0001"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
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

			e, err := newTestService(ctrl, mockStorage, events.NewNoopPublisher(logging.NewNoopLogger())).CreateEmployee(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Code != test.expectedCode {
				t.Errorf("expected code %s, got %s", test.expectedCode, e.Code)
			}
		})
	}
}

func TestServiceUpdateEmployeePaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	title := "Engineer"
	active := false
	rate := decimal.RequireFromString("40")

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateEmployee(gomock.Any(), "tenant-1", gomock.Any(), []string{"job_title", "hourly_rate", "is_active"}).
		DoAndReturn(func(_ context.Context, _ string, e *types.Employee, _ []string) (*types.Employee, error) {
			return e, nil
		})

	req := &EmployeeUpdateRequest{JobTitle: &title, HourlyRate: &rate, IsActive: &active}
	e, err := newTestService(ctrl, mockStorage, events.NewNoopPublisher(logging.NewNoopLogger())).UpdateEmployee(context.Background(), "tenant-1", "e1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "e1" || e.JobTitle != title || e.Active {
		t.Errorf("unexpected employee %+v", e)
	}
}
