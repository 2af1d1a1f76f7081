// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"github.com/shopspring/decimal"
)

const defaultUnit = "unit"

type WarehouseRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Code      string `json:"code" validate:"max=50"`
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default"`
}

type WarehouseUpdateRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	Address   *string `json:"address"`
	IsDefault *bool   `json:"is_default"`
}

type SKURequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Code            string          `json:"code" validate:"max=50"`
	Unit            string          `json:"unit" validate:"max=20"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	IsActive        *bool           `json:"is_active"`
}

type SKUUpdateRequest struct {
	Name            *string          `json:"name"`
	Code            *string          `json:"code"`
	Unit            *string          `json:"unit"`
	ReorderPoint    *decimal.Decimal `json:"reorder_point"`
	ReorderQuantity *decimal.Decimal `json:"reorder_quantity"`
	IsActive        *bool            `json:"is_active"`
}

// StockAdjustment moves the stock of a sku in a warehouse by Delta, which may be negative.
type StockAdjustment struct {
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	SKUID       string          `json:"sku_id" validate:"required"`
	Delta       decimal.Decimal `json:"delta"`
}

type PurchaseOrderLineRequest struct {
	SKUID           string          `json:"sku_id" validate:"required"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

type PurchaseOrderRequest struct {
	WarehouseID  string                      `json:"warehouse_id" validate:"required"`
	Number       string                      `json:"number" validate:"max=50"`
	OrderDate    string                      `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	ExpectedDate string                      `json:"expected_date" validate:"omitempty,datetime=2006-01-02"`
	Lines        []*PurchaseOrderLineRequest `json:"lines" validate:"dive"`
}

// PurchaseOrderReceived is the payload of the purchase_order.received event.
type PurchaseOrderReceived struct {
	OrderID     string `json:"purchase_order_id"`
	Number      string `json:"number"`
	WarehouseID string `json:"warehouse_id"`
	Lines       int    `json:"lines_received"`
}
