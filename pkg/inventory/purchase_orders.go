// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListPurchaseOrders(ctx context.Context, tenantID string) ([]*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListPurchaseOrders")
	defer span.End()

	return s.storage.ListPurchaseOrders(ctx, tenantID)
}

func (s *Service) GetPurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.GetPurchaseOrder")
	defer span.End()

	o, err := s.storage.GetPurchaseOrder(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if o.Lines, err = s.storage.ListPurchaseOrderLines(ctx, o.ID); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) CreatePurchaseOrder(ctx context.Context, caller *types.User, req *PurchaseOrderRequest) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreatePurchaseOrder")
	defer span.End()

	tenantID := caller.TenantID

	o := &types.PurchaseOrder{
		TenantID:        tenantID,
		WarehouseID:     req.WarehouseID,
		Number:          strings.TrimSpace(req.Number),
		Status:          types.PurchaseOrderStatusDraft,
		CreatedByUserID: &caller.ID,
	}

	var err error
	if o.OrderDate, err = types.ParseDate(req.OrderDate, "order_date"); err != nil {
		return nil, err
	}
	if o.ExpectedDate, err = types.ParseDate(req.ExpectedDate, "expected_date"); err != nil {
		return nil, err
	}

	for _, l := range req.Lines {
		if !l.QuantityOrdered.IsPositive() {
			return nil, types.Invalid("quantity_ordered must be positive")
		}
		if err := nonNegative(l.UnitPrice, "unit_price"); err != nil {
			return nil, err
		}
	}

	if _, err := s.storage.GetWarehouse(ctx, tenantID, req.WarehouseID); err != nil {
		return nil, err
	}
	for _, l := range req.Lines {
		if _, err := s.storage.GetSKU(ctx, tenantID, l.SKUID); err != nil {
			return nil, err
		}
	}

	var created *types.PurchaseOrder
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if o.Number == "" {
			number, err := s.storage.NextCode(ctx, tenantID, storage.SequencePurchaseOrder)
			if err != nil {
				return err
			}
			o.Number = number
		}

		var err error
		if created, err = s.storage.CreatePurchaseOrder(ctx, o); err != nil {
			return err
		}

		lines := make([]*types.PurchaseOrderLine, 0, len(req.Lines))
		for _, l := range req.Lines {
			lines = append(
				lines,
				&types.PurchaseOrderLine{
					PurchaseOrderID:  created.ID,
					SKUID:            l.SKUID,
					QuantityOrdered:  l.QuantityOrdered,
					QuantityReceived: decimal.Zero,
					UnitPrice:        l.UnitPrice,
				},
			)
		}

		created.Lines, err = s.storage.CreatePurchaseOrderLines(ctx, lines)
		return err
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("purchase order %s already exists", o.Number)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ReceivePurchaseOrder books the outstanding quantity of every line into the order's
// warehouse and marks the order received.
func (s *Service) ReceivePurchaseOrder(ctx context.Context, tenantID, id string) (*types.PurchaseOrder, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ReceivePurchaseOrder")
	defer span.End()

	var received *types.PurchaseOrder
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		o, err := s.storage.GetPurchaseOrderForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}

		switch o.Status {
		case types.PurchaseOrderStatusReceived:
			return types.Conflict("purchase order %s was already received", o.Number)
		case types.PurchaseOrderStatusCanceled:
			return types.Conflict("purchase order %s is cancelled", o.Number)
		}

		lines, err := s.storage.ListPurchaseOrderLines(ctx, o.ID)
		if err != nil {
			return err
		}

		count := 0
		for _, l := range lines {
			remaining := l.QuantityOrdered.Sub(l.QuantityReceived)
			if !remaining.IsPositive() {
				continue
			}

			if _, err := s.storage.AdjustStock(ctx, o.WarehouseID, l.SKUID, remaining); err != nil {
				return err
			}
			if err := s.storage.ReceivePurchaseOrderLine(ctx, l.ID); err != nil {
				return err
			}

			l.QuantityReceived = l.QuantityOrdered
			count++
		}

		if received, err = s.storage.SetPurchaseOrderStatus(ctx, tenantID, o.ID, types.PurchaseOrderStatusReceived); err != nil {
			return err
		}
		received.Lines = lines

		payload := PurchaseOrderReceived{OrderID: o.ID, Number: o.Number, WarehouseID: o.WarehouseID, Lines: count}
		db.AfterCommit(ctx, func() {
			if err := s.publisher.Publish(context.WithoutCancel(ctx), tenantID, events.PURCHASE_ORDER_RECEIVED, payload); err != nil {
				s.logger.Errorf("failed to publish receipt of purchase order %s: %v", payload.Number, err)
			}
		})

		return nil
	})
	monitoring.RecordOutcome(s.monitor, monitoring.WorkflowPurchaseOrderReceipt, err)
	if err != nil {
		return nil, err
	}

	return received, nil
}
