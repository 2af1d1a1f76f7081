// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Service level failure classes, each one maps to a distinct response code.
var (
	ErrAuthentication  = errors.New("authentication failure")
	ErrInactiveAccount = errors.New("account is disabled")
	ErrAuthorization   = errors.New("insufficient permissions")
	ErrValidation      = errors.New("validation failure")
	ErrConflict        = errors.New("conflict")

	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrAuthentication)
)

// Invalid returns a validation error carrying a human readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// Conflict returns a conflict error carrying a human readable reason.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}
