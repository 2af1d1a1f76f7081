// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29", "start")
	if err != nil || d == nil || d.Day() != 29 {
		t.Errorf("unexpected result %v, %v", d, err)
	}

	if d, err := ParseDate("", "start"); d != nil || err != nil {
		t.Errorf("expected empty value to be skipped, got %v, %v", d, err)
	}

	if _, err := ParseDate("29/02/2024", "start"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
