// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer resolves permissions from the current role assignments on every call.
type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Permissions(ctx context.Context, userID string) (PermissionSet, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Permissions")
	defer span.End()

	keys, err := a.storage.ListPermissionKeysByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions of user %s: %w", userID, err)
	}

	return NewPermissionSet(keys...), nil
}

// Check reports whether the user holds any of keys.
func (a *Authorizer) Check(ctx context.Context, userID string, keys ...string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	if len(keys) == 0 {
		return true, nil
	}

	set, err := a.Permissions(ctx, userID)
	if err != nil {
		return false, err
	}

	return set.HasAny(keys...), nil
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.storage = storage
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
