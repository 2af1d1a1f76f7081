// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceRequest struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	ProjectID  *string         `json:"project_id"`
	Number     string          `json:"number" validate:"max=50"`
	Status     string          `json:"status" validate:"omitempty,invoice_status"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type InvoiceUpdateRequest struct {
	ProjectID *string          `json:"project_id"`
	Status    *string          `json:"status" validate:"omitempty,invoice_status"`
	Amount    *decimal.Decimal `json:"amount"`
	DueDate   *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// InvoicePaid is the payload of the invoice.paid event.
type InvoicePaid struct {
	InvoiceID  string          `json:"invoice_id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paid_at"`
}
