// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestServiceCreateUser(t *testing.T) {
	inactive := false

	tests := []struct {
		name        string
		req         *UserRequest
		setupMocks  func(*MockStorageInterface)
		check       func(*testing.T, *Member)
		expectedErr error
	}{
		{
			name: "duplicate email",
			req:  &UserRequest{Email: "Jane@Example.com", FullName: "Jane"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: "user-2"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "concurrent duplicate",
			req:  &UserRequest{Email: "jane@example.com", FullName: "Jane"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "blank name",
			req:  &UserRequest{Email: "jane@example.com", FullName: "  "},
			setupMocks: func(*MockStorageInterface) {
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "active by default without password",
			req:  &UserRequest{Email: "jane@example.com", FullName: "Jane"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), &types.User{TenantID: "tenant-1", Email: "jane@example.com", FullName: "Jane", Active: true}).
					Return(&types.User{ID: "user-2", TenantID: "tenant-1", Active: true}, nil)
				s.EXPECT().ListUserRoles(gomock.Any(), "tenant-1", "user-2").Return(nil, nil)
			},
			check: func(t *testing.T, m *Member) {
				if len(m.RoleIDs) != 0 {
					t.Errorf("expected no roles, got %v", m.RoleIDs)
				}
			},
		},
		{
			name: "inactive with password and roles",
			req:  &UserRequest{Email: "jane@example.com", FullName: "Jane", Password: "s3cret-pass", IsActive: &inactive, RoleIDs: []string{"role-1"}},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Active {
							t.Error("expected inactive user")
						}
						if !authentication.CheckPassword(u.PasswordHash, "s3cret-pass") {
							t.Error("expected hashed password")
						}
						u.ID = "user-2"
						return u, nil
					},
				)
				s.EXPECT().SetUserRoles(gomock.Any(), "tenant-1", "user-2", []string{"role-1"}).Return(nil)
				s.EXPECT().ListUserRoles(gomock.Any(), "tenant-1", "user-2").Return([]*types.Role{{ID: "role-1"}}, nil)
			},
			check: func(t *testing.T, m *Member) {
				if len(m.RoleIDs) != 1 || m.RoleIDs[0] != "role-1" {
					t.Errorf("unexpected roles %v", m.RoleIDs)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			member, err := newTestService(mockStorage).CreateUser(context.Background(), "tenant-1", test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			test.check(t, member)
		})
	}
}

func TestServiceUpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	name := "Jane Doe"
	active := false
	roles := []string{}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateUser(gomock.Any(), "tenant-1", &types.User{ID: "user-2", FullName: name}, []string{"full_name", "is_active"}).
		Return(&types.User{ID: "user-2", TenantID: "tenant-1"}, nil)
	mockStorage.EXPECT().SetUserRoles(gomock.Any(), "tenant-1", "user-2", []string{}).Return(nil)
	mockStorage.EXPECT().ListUserRoles(gomock.Any(), "tenant-1", "user-2").Return(nil, nil)

	_, err := newTestService(mockStorage).UpdateUser(context.Background(), "tenant-1", "user-2", &UserUpdateRequest{
		FullName: &name,
		IsActive: &active,
		RoleIDs:  &roles,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &types.User{ID: "user-1", TenantID: "tenant-1"}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().DeleteUser(gomock.Any(), "tenant-1", "user-2").Return(nil)

	s := newTestService(mockStorage)

	if err := s.DeleteUser(context.Background(), caller, "user-1"); !errors.Is(err, types.ErrValidation) {
		t.Errorf("expected validation error deleting self, got %v", err)
	}

	if err := s.DeleteUser(context.Background(), caller, "user-2"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestServiceAssignRole(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "foreign user",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-2").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "foreign role",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-2").Return(&types.User{ID: "user-2"}, nil)
				s.EXPECT().GetRole(gomock.Any(), "tenant-1", "role-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "assigned",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-2").Return(&types.User{ID: "user-2"}, nil)
				s.EXPECT().GetRole(gomock.Any(), "tenant-1", "role-1").Return(&types.Role{ID: "role-1"}, nil)
				s.EXPECT().AssignRole(gomock.Any(), "user-2", "role-1").Return(nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			err := newTestService(mockStorage).AssignRole(context.Background(), "tenant-1", "user-2", "role-1")
			if test.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Errorf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestServiceSetRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	gomock.InOrder(
		mockStorage.EXPECT().GetTenantUser(gomock.Any(), "tenant-1", "user-2").Return(&types.User{ID: "user-2", TenantID: "tenant-1"}, nil),
		mockStorage.EXPECT().SetUserRoles(gomock.Any(), "tenant-1", "user-2", []string{"role-1", "role-2"}).Return(nil),
		mockStorage.EXPECT().ListUserRoles(gomock.Any(), "tenant-1", "user-2").Return([]*types.Role{{ID: "role-1"}, {ID: "role-2"}}, nil),
	)

	member, err := newTestService(mockStorage).SetRoles(context.Background(), "tenant-1", "user-2", []string{"role-1", "role-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(member.RoleIDs) != 2 {
		t.Errorf("expected 2 roles, got %v", member.RoleIDs)
	}
}
