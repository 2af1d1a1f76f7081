// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

const (
	WorkflowLeadConversion       = "lead_conversion"
	WorkflowPayrollGeneration    = "payroll_generation"
	WorkflowPurchaseOrderReceipt = "purchase_order_receipt"
	outcomeSuccess               = "success"
	outcomeFailure               = "failure"
)

// RecordOutcome counts one run of a multi-step workflow, err decides the outcome label.
func RecordOutcome(m MonitorInterface, workflow string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	_ = m.IncWorkflowOutcome(map[string]string{"workflow": workflow, "outcome": outcome})
}
