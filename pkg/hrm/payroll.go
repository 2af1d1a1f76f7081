// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hrm

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/types"
)

const (
	amountPlaces = 2
	periodLayout = "2006-01"
)

func (s *Service) ListPayrollRuns(ctx context.Context, tenantID string) ([]*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.ListPayrollRuns")
	defer span.End()

	return s.storage.ListPayrollRuns(ctx, tenantID)
}

// GetPayrollRun returns the run with its items.
func (s *Service) GetPayrollRun(ctx context.Context, tenantID, id string) (*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.GetPayrollRun")
	defer span.End()

	run, err := s.storage.GetPayrollRun(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if run.Items, err = s.storage.ListPayrollItems(ctx, run.ID); err != nil {
		return nil, err
	}

	return run, nil
}

// PayrollItem computes the pay of one employee: the monthly salary plus the approved
// hours paid at the hourly rate, both rounded to cents.
func PayrollItem(e *types.Employee, approvedHours decimal.Decimal) *types.PayrollItem {
	base := e.BaseSalaryMonthly.Round(amountPlaces)
	timesheet := approvedHours.Mul(e.HourlyRate).Round(amountPlaces)

	return &types.PayrollItem{
		EmployeeID:      e.ID,
		BaseAmount:      base,
		TimesheetAmount: timesheet,
		TotalAmount:     base.Add(timesheet),
		Status:          types.PayrollItemStatusPending,
	}
}

// GeneratePayroll creates a draft run over [period_start, period_end] with one pending item
// per active employee of the tenant.
func (s *Service) GeneratePayroll(ctx context.Context, tenantID string, req *PayrollRequest) (*types.PayrollRun, error) {
	ctx, span := s.tracer.Start(ctx, "hrm.Service.GeneratePayroll")
	defer span.End()

	start, err := types.ParseDate(req.PeriodStart, "period_start")
	if err != nil {
		return nil, err
	}
	end, err := types.ParseDate(req.PeriodEnd, "period_end")
	if err != nil {
		return nil, err
	}
	if start == nil || end == nil {
		return nil, types.Invalid("period_start and period_end are required")
	}
	if end.Before(*start) {
		return nil, types.Invalid("period_end must not precede period_start")
	}

	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = start.Format(periodLayout)
	}

	var run *types.PayrollRun
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		employees, err := s.storage.ListEmployees(ctx, tenantID, true)
		if err != nil {
			return err
		}

		hours, err := s.storage.ApprovedHoursByEmployee(ctx, tenantID, *start, *end)
		if err != nil {
			return err
		}

		run, err = s.storage.CreatePayrollRun(
			ctx,
			&types.PayrollRun{
				TenantID:    tenantID,
				Period:      period,
				PeriodStart: *start,
				PeriodEnd:   *end,
				Status:      types.PayrollRunStatusDraft,
			},
		)
		if err != nil {
			return err
		}

		items := make([]*types.PayrollItem, 0, len(employees))
		total := decimal.Zero
		for _, e := range employees {
			item := PayrollItem(e, hours[e.ID])
			item.PayrollRunID = run.ID
			total = total.Add(item.TotalAmount)
			items = append(items, item)
		}

		if run.Items, err = s.storage.CreatePayrollItems(ctx, items); err != nil {
			return err
		}

		payload := PayrollGenerated{RunID: run.ID, Period: run.Period, Items: len(items), TotalAmount: total}
		db.AfterCommit(ctx, func() {
			if err := s.publisher.Publish(context.WithoutCancel(ctx), tenantID, events.PAYROLL_GENERATED, payload); err != nil {
				s.logger.Errorf("failed to publish payroll run %s: %v", payload.RunID, err)
			}
		})

		return nil
	})
	monitoring.RecordOutcome(s.monitor, monitoring.WorkflowPayrollGeneration, err)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("payroll run %s generated for %s with %d items", run.ID, run.Period, len(run.Items))

	return run, nil
}
