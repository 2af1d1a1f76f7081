// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) member(ctx context.Context, u *types.User) (*Member, error) {
	roles, err := s.storage.ListUserRoles(ctx, u.TenantID, u.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}

	return &Member{User: u, RoleIDs: ids}, nil
}

func (s *Service) ListUsers(ctx context.Context, tenantID string) ([]*Member, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	members := make([]*Member, 0, len(users))
	for _, u := range users {
		m, err := s.member(ctx, u)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

func (s *Service) GetUser(ctx context.Context, tenantID, id string) (*Member, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	u, err := s.storage.GetTenantUser(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	return s.member(ctx, u)
}

func (s *Service) CreateUser(ctx context.Context, tenantID string, req *UserRequest) (*Member, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, types.Invalid("full_name is required")
	}

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, types.Conflict("email already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	u := &types.User{TenantID: tenantID, Email: email, FullName: fullName, Active: true}
	if req.IsActive != nil {
		u.Active = *req.IsActive
	}

	if req.Password != "" {
		hash, err := authentication.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = &hash
	}

	created, err := s.storage.CreateUser(ctx, u)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, types.Conflict("email already registered")
	}
	if err != nil {
		return nil, err
	}

	if len(req.RoleIDs) > 0 {
		if err := s.storage.SetUserRoles(ctx, tenantID, created.ID, req.RoleIDs); err != nil {
			return nil, err
		}
	}

	return s.member(ctx, created)
}

func (s *Service) UpdateUser(ctx context.Context, tenantID, id string, req *UserUpdateRequest) (*Member, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateUser")
	defer span.End()

	u := &types.User{ID: id}
	paths := make([]string, 0, 3)

	if req.FullName != nil {
		u.FullName = strings.TrimSpace(*req.FullName)
		if u.FullName == "" {
			return nil, types.Invalid("full_name cannot be empty")
		}
		paths = append(paths, "full_name")
	}

	if req.IsActive != nil {
		u.Active = *req.IsActive
		paths = append(paths, "is_active")
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := authentication.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = &hash
		paths = append(paths, "password_hash")
	}

	updated, err := s.storage.UpdateUser(ctx, tenantID, u, paths)
	if err != nil {
		return nil, err
	}

	if req.RoleIDs != nil {
		if err := s.storage.SetUserRoles(ctx, tenantID, updated.ID, *req.RoleIDs); err != nil {
			return nil, err
		}
	}

	return s.member(ctx, updated)
}

// DeleteUser removes a user of the caller tenant, callers cannot remove themselves.
func (s *Service) DeleteUser(ctx context.Context, caller *types.User, id string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.DeleteUser")
	defer span.End()

	if caller.ID == id {
		return types.Invalid("cannot delete your own account")
	}

	return s.storage.DeleteUser(ctx, caller.TenantID, id)
}

// SetRoles replaces the roles of a user, roles of other tenants are ignored.
func (s *Service) SetRoles(ctx context.Context, tenantID, id string, roleIDs []string) (*Member, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.SetRoles")
	defer span.End()

	u, err := s.storage.GetTenantUser(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SetUserRoles(ctx, tenantID, u.ID, roleIDs); err != nil {
		return nil, err
	}

	return s.member(ctx, u)
}

// AssignRole grants a role to a user, both must belong to the tenant.
func (s *Service) AssignRole(ctx context.Context, tenantID, userID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.AssignRole")
	defer span.End()

	if err := s.ensureMembers(ctx, tenantID, userID, roleID); err != nil {
		return err
	}

	return s.storage.AssignRole(ctx, userID, roleID)
}

func (s *Service) UnassignRole(ctx context.Context, tenantID, userID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.UnassignRole")
	defer span.End()

	if err := s.ensureMembers(ctx, tenantID, userID, roleID); err != nil {
		return err
	}

	return s.storage.UnassignRole(ctx, userID, roleID)
}

func (s *Service) ensureMembers(ctx context.Context, tenantID, userID, roleID string) error {
	if _, err := s.storage.GetTenantUser(ctx, tenantID, userID); err != nil {
		return err
	}

	_, err := s.storage.GetRole(ctx, tenantID, roleID)
	return err
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
