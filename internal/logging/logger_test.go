// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	logger := NewLogger("invalid")

	if !logger.Desugar().Core().Enabled(zap.FatalLevel) {
		t.Fatal("expected fatal level to be enabled")
	}

	if logger.Desugar().Core().Enabled(zap.InfoLevel) {
		t.Fatal("expected info level to be disabled when falling back to error")
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().SystemStartup()
	logger.Security().AuthzFailure("user-1", "crm.view")
	logger.Security().AdminAction("user-1", "delete", "role", "role-1")
}
