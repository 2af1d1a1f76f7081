// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"
	"testing"
)

func TestPermissionSet(t *testing.T) {
	set := NewPermissionSet(PM_VIEW, CRM_VIEW, PM_VIEW)

	if len(set) != 2 {
		t.Errorf("expected 2 keys, got %d", len(set))
	}

	if !set.Has(CRM_VIEW) || set.Has(CRM_EDIT) {
		t.Error("unexpected membership")
	}

	if !set.HasAny() {
		t.Error("expected an empty requirement to be satisfied")
	}

	if set.HasAny(CRM_EDIT, HRM_EDIT) {
		t.Error("expected no match")
	}

	if keys := set.Keys(); !slices.Equal(keys, []string{CRM_VIEW, PM_VIEW}) {
		t.Errorf("unexpected keys %v", keys)
	}
}
