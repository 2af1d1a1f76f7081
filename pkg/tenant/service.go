// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// UpdateTenant renames the tenant or changes its timezone, the code stays fixed.
func (s *Service) UpdateTenant(ctx context.Context, tenantID string, req *TenantUpdateRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	t := &types.Tenant{ID: tenantID}
	paths := make([]string, 0, 2)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, types.Invalid("name cannot be blank")
		}
		t.Name = name
		paths = append(paths, "name")
	}

	if req.Timezone != nil {
		t.Timezone = *req.Timezone
		paths = append(paths, "timezone")
	}

	updated, err := s.storage.UpdateTenant(ctx, t, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return updated, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
