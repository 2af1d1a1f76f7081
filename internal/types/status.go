// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "slices"

type LeadStatus string

const (
	LeadProspect    LeadStatus = "prospect"
	LeadQualified   LeadStatus = "qualified"
	LeadProposal    LeadStatus = "proposal"
	LeadNegotiation LeadStatus = "negotiation"
	LeadClosedWon   LeadStatus = "closed_won"
	LeadClosedLost  LeadStatus = "closed_lost"
)

var leadStatuses = []LeadStatus{
	LeadProspect,
	LeadQualified,
	LeadProposal,
	LeadNegotiation,
	LeadClosedWon,
	LeadClosedLost,
}

func (s LeadStatus) Valid() bool {
	return slices.Contains(leadStatuses, s)
}

const (
	ProjectStatusActive = "active"

	MilestoneStatusPending = "pending"
	TaskStatusPending      = "pending"

	TimesheetStatusDraft     = "draft"
	TimesheetStatusSubmitted = "submitted"
	TimesheetStatusApproved  = "approved"

	PayrollRunStatusDraft    = "draft"
	PayrollItemStatusPending = "pending"

	PurchaseOrderStatusDraft    = "draft"
	PurchaseOrderStatusReceived = "received"
	PurchaseOrderStatusCanceled = "cancelled"

	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

var invoiceStatuses = []string{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue}

func ValidInvoiceStatus(s string) bool {
	return slices.Contains(invoiceStatuses, s)
}

var timesheetStatuses = []string{TimesheetStatusDraft, TimesheetStatusSubmitted, TimesheetStatusApproved}

func ValidTimesheetStatus(s string) bool {
	return slices.Contains(timesheetStatuses, s)
}
