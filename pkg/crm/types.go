// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"github.com/shopspring/decimal"

	"github.com/canonical/erp-service/internal/types"
)

type LeadRequest struct {
	CompanyName string          `json:"company_name" validate:"required,max=255"`
	ContactName string          `json:"contact_name" validate:"max=255"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone" validate:"max=50"`
	Status      string          `json:"status" validate:"omitempty,lead_status"`
	Stage       string          `json:"stage" validate:"max=100"`
	Value       decimal.Decimal `json:"value"`
}

type LeadUpdateRequest struct {
	CompanyName      *string          `json:"company_name"`
	ContactName      *string          `json:"contact_name"`
	Email            *string          `json:"email" validate:"omitempty,email"`
	Phone            *string          `json:"phone"`
	Status           *string          `json:"status" validate:"omitempty,lead_status"`
	Stage            *string          `json:"stage"`
	Value            *decimal.Decimal `json:"value"`
	AssignedToUserID *string          `json:"assigned_to_user_id"`
}

type CustomerRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Code            string `json:"code" validate:"max=50"`
	TaxID           string `json:"tax_id" validate:"max=50"`
	BillingAddress  string `json:"billing_address"`
	ShippingAddress string `json:"shipping_address"`
}

type CustomerUpdateRequest struct {
	Name            *string `json:"name"`
	Code            *string `json:"code"`
	TaxID           *string `json:"tax_id"`
	BillingAddress  *string `json:"billing_address"`
	ShippingAddress *string `json:"shipping_address"`
}

// Conversion holds the records produced by converting a lead.
type Conversion struct {
	Lead     *types.Lead     `json:"lead"`
	Customer *types.Customer `json:"customer"`
	Project  *types.Project  `json:"project"`
}

// Overview is the single view of a customer.
type Overview struct {
	Customer       *types.Customer  `json:"customer"`
	Projects       []*types.Project `json:"projects"`
	UnpaidInvoices []*types.Invoice `json:"unpaid_invoices"`
}

// LeadConverted is the payload of the lead.converted event.
type LeadConverted struct {
	LeadID     string `json:"lead_id"`
	CustomerID string `json:"customer_id"`
	ProjectID  string `json:"project_id"`
}
