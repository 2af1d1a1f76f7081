// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"errors"
	"testing"
)

type recordingMonitor struct {
	NoopMonitor
	tags []map[string]string
}

func (m *recordingMonitor) IncWorkflowOutcome(tags map[string]string) error {
	m.tags = append(m.tags, tags)
	return nil
}

func TestRecordOutcome(t *testing.T) {
	m := new(recordingMonitor)

	RecordOutcome(m, WorkflowLeadConversion, nil)
	RecordOutcome(m, WorkflowPayrollGeneration, errors.New("boom"))

	if len(m.tags) != 2 {
		t.Fatalf("expected 2 recorded outcomes, got %d", len(m.tags))
	}
	if m.tags[0]["workflow"] != WorkflowLeadConversion || m.tags[0]["outcome"] != "success" {
		t.Errorf("unexpected tags %v", m.tags[0])
	}
	if m.tags[1]["workflow"] != WorkflowPayrollGeneration || m.tags[1]["outcome"] != "failure" {
		t.Errorf("unexpected tags %v", m.tags[1])
	}
}
