// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package finance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	tx        TxInterface
	publisher events.PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListInvoices(ctx context.Context, tenantID string, filter types.InvoiceFilter) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "finance.Service.ListInvoices")
	defer span.End()

	if filter.Status != "" && !types.ValidInvoiceStatus(filter.Status) {
		return nil, types.Invalid("status has an invalid value")
	}

	return s.storage.ListInvoices(ctx, tenantID, filter)
}

func (s *Service) GetInvoice(ctx context.Context, tenantID, id string) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "finance.Service.GetInvoice")
	defer span.End()

	return s.storage.GetInvoice(ctx, tenantID, id)
}

func (s *Service) CreateInvoice(ctx context.Context, tenantID string, req *InvoiceRequest) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "finance.Service.CreateInvoice")
	defer span.End()

	i := &types.Invoice{
		TenantID:   tenantID,
		CustomerID: req.CustomerID,
		Number:     strings.TrimSpace(req.Number),
		Status:     req.Status,
		Amount:     req.Amount,
	}
	if i.Status == "" {
		i.Status = types.InvoiceStatusDraft
	}

	if i.CustomerID == "" {
		return nil, types.Invalid("customer_id is required")
	}
	if !types.ValidInvoiceStatus(i.Status) {
		return nil, types.Invalid("status has an invalid value")
	}
	if i.Amount.IsNegative() {
		return nil, types.Invalid("amount must not be negative")
	}

	var err error
	if i.DueDate, err = types.ParseDate(req.DueDate, "due_date"); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetCustomer(ctx, tenantID, i.CustomerID); err != nil {
		return nil, err
	}
	if i.ProjectID, err = s.projectRef(ctx, tenantID, req.ProjectID); err != nil {
		return nil, err
	}

	if i.Status == types.InvoiceStatusPaid {
		now := time.Now().UTC()
		i.PaidAt = &now
	}

	var created *types.Invoice
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if i.Number == "" {
			number, err := s.storage.NextCode(ctx, tenantID, storage.SequenceInvoice)
			if err != nil {
				return err
			}
			i.Number = number
		}

		var err error
		if created, err = s.storage.CreateInvoice(ctx, i); err != nil {
			return err
		}

		if created.Status == types.InvoiceStatusPaid {
			s.publishPaid(ctx, tenantID, created)
		}

		return nil
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("invoice %s already exists", i.Number)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateInvoice applies a partial update. Moving an invoice to paid stamps paid_at,
// moving it out of paid clears it.
func (s *Service) UpdateInvoice(ctx context.Context, tenantID, id string, req *InvoiceUpdateRequest) (*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "finance.Service.UpdateInvoice")
	defer span.End()

	i := &types.Invoice{ID: id}
	paths := make([]string, 0, 5)

	var err error

	if req.Status != nil {
		if !types.ValidInvoiceStatus(*req.Status) {
			return nil, types.Invalid("status has an invalid value")
		}
		i.Status = *req.Status
		paths = append(paths, "status")
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, types.Invalid("amount must not be negative")
		}
		i.Amount = *req.Amount
		paths = append(paths, "amount")
	}
	if req.DueDate != nil {
		if i.DueDate, err = types.ParseDate(*req.DueDate, "due_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "due_date")
	}
	if req.ProjectID != nil {
		if i.ProjectID, err = s.projectRef(ctx, tenantID, req.ProjectID); err != nil {
			return nil, err
		}
		paths = append(paths, "project_id")
	}

	var updated *types.Invoice
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.storage.GetInvoiceForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}

		paid := req.Status != nil && i.Status == types.InvoiceStatusPaid && current.Status != types.InvoiceStatusPaid
		switch {
		case paid:
			now := time.Now().UTC()
			i.PaidAt = &now
			paths = append(paths, "paid_at")
		case req.Status != nil && i.Status != types.InvoiceStatusPaid && current.PaidAt != nil:
			paths = append(paths, "paid_at")
		}

		if updated, err = s.storage.UpdateInvoice(ctx, tenantID, i, paths); err != nil {
			return err
		}

		if paid {
			s.publishPaid(ctx, tenantID, updated)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "finance.Service.DeleteInvoice")
	defer span.End()

	return s.storage.DeleteInvoice(ctx, tenantID, id)
}

func (s *Service) projectRef(ctx context.Context, tenantID string, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	p, err := s.storage.GetProject(ctx, tenantID, *id)
	if err != nil {
		return nil, err
	}

	return &p.ID, nil
}

func (s *Service) publishPaid(ctx context.Context, tenantID string, i *types.Invoice) {
	payload := InvoicePaid{InvoiceID: i.ID, Number: i.Number, CustomerID: i.CustomerID, Amount: i.Amount}
	if i.PaidAt != nil {
		payload.PaidAt = *i.PaidAt
	}

	db.AfterCommit(ctx, func() {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), tenantID, events.INVOICE_PAID, payload); err != nil {
			s.logger.Errorf("failed to publish payment of invoice %s: %v", payload.Number, err)
		}
	})
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	publisher events.PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.publisher = publisher

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
