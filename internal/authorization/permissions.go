// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"
)

// Permission keys of the default catalog, each one is "module.action".
const (
	AUTH_VIEW = "auth.view"
	AUTH_EDIT = "auth.edit"

	CRM_VIEW         = "crm.view"
	CRM_EDIT         = "crm.edit"
	CRM_LEAD_CREATE  = "crm.lead.create"
	CRM_LEAD_CONVERT = "crm.lead.convert"

	HRM_VIEW = "hrm.view"
	HRM_EDIT = "hrm.edit"

	INVENTORY_VIEW = "inventory.view"
	INVENTORY_EDIT = "inventory.edit"

	FINANCE_VIEW = "finance.view"
	FINANCE_EDIT = "finance.edit"

	PM_VIEW = "pm.view"
	PM_EDIT = "pm.edit"
)

// PermissionSet is the union of the permission keys granted to a user.
type PermissionSet map[string]struct{}

func NewPermissionSet(keys ...string) PermissionSet {
	set := make(PermissionSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func (s PermissionSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// HasAny reports whether at least one of keys is granted, no keys means no requirement.
func (s PermissionSet) HasAny(keys ...string) bool {
	if len(keys) == 0 {
		return true
	}

	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Keys returns the granted keys in lexical order.
func (s PermissionSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
