// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "time"

// ParseDate parses an optional YYYY-MM-DD value, field names the value in the error message.
func ParseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, Invalid("%s must be a date in YYYY-MM-DD format", field)
	}

	return &t, nil
}
