// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
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

func (s *Service) ListRoles(ctx context.Context, tenantID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListRoles")
	defer span.End()

	return s.storage.ListRoles(ctx, tenantID)
}

func (s *Service) GetRole(ctx context.Context, tenantID, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetRole")
	defer span.End()

	return s.storage.GetRole(ctx, tenantID, id)
}

func (s *Service) CreateRole(ctx context.Context, tenantID string, req *RoleRequest) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.CreateRole")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, types.Invalid("role name is required")
	}

	role, err := s.storage.CreateRole(ctx, &types.Role{TenantID: tenantID, Name: name, Description: strings.TrimSpace(req.Description)})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("role %q already exists", name)
	}
	if err != nil {
		return nil, err
	}

	if len(req.PermissionIDs) > 0 {
		if err := s.storage.SetRolePermissions(ctx, role.ID, req.PermissionIDs); err != nil {
			return nil, err
		}
	}

	return s.storage.GetRole(ctx, tenantID, role.ID)
}

// UpdateRole changes the fields set in req, a permission list replaces the current grants.
func (s *Service) UpdateRole(ctx context.Context, tenantID, id string, req *RoleUpdateRequest) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.UpdateRole")
	defer span.End()

	role := &types.Role{ID: id}
	paths := make([]string, 0, 2)

	if req.Name != nil {
		role.Name = strings.TrimSpace(*req.Name)
		if role.Name == "" {
			return nil, types.Invalid("role name cannot be empty")
		}
		paths = append(paths, "name")
	}

	if req.Description != nil {
		role.Description = strings.TrimSpace(*req.Description)
		paths = append(paths, "description")
	}

	updated, err := s.storage.UpdateRole(ctx, tenantID, role, paths)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("role %q already exists", role.Name)
	}
	if err != nil {
		return nil, err
	}

	if req.PermissionIDs != nil {
		if err := s.storage.SetRolePermissions(ctx, updated.ID, *req.PermissionIDs); err != nil {
			return nil, err
		}
		s.logger.Debugf("permissions of role %s replaced", updated.ID)
	}

	return s.storage.GetRole(ctx, tenantID, updated.ID)
}

func (s *Service) DeleteRole(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.DeleteRole")
	defer span.End()

	return s.storage.DeleteRole(ctx, tenantID, id)
}

func (s *Service) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListPermissions")
	defer span.End()

	return s.storage.ListPermissions(ctx)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
