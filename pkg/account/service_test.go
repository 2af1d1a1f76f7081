// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	tx       *MockTxInterface
	tokens   *authentication.MockTokenManagerInterface
	external *authentication.MockExternalVerifierInterface
	authz    *authorization.MockAuthorizerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxInterface(ctrl),
		tokens:   authentication.NewMockTokenManagerInterface(ctrl),
		external: authentication.NewMockExternalVerifierInterface(ctrl),
		authz:    authorization.NewMockAuthorizerInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s := NewService(m.storage, m.tx, m.tokens, m.external, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	return s, m
}

func hashed(t *testing.T, password string) *string {
	t.Helper()

	hash, err := authentication.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &hash
}

func expectAdminProvisioning(m *mocks, tenantID string) {
	m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			u.ID = "user-1"
			return u, nil
		},
	)
	m.storage.EXPECT().CreateRole(gomock.Any(), &types.Role{TenantID: tenantID, Name: ADMIN_ROLE, Description: adminRoleDescription}).Return(&types.Role{ID: "role-1", TenantID: tenantID, Name: ADMIN_ROLE}, nil)
	m.storage.EXPECT().ListPermissions(gomock.Any()).Return([]*types.Permission{{ID: "crm.view"}, {ID: "crm.edit"}}, nil)
	m.storage.EXPECT().SetRolePermissions(gomock.Any(), "role-1", []string{"crm.view", "crm.edit"}).Return(nil)
	m.storage.EXPECT().AssignRole(gomock.Any(), "user-1", "role-1").Return(nil)
}

func TestServiceRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetTenantByCode(gomock.Any(), "ACME").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{Name: "Acme", Code: "ACME"}).Return(&types.Tenant{ID: "tenant-1", Name: "Acme", Code: "ACME"}, nil)
	expectAdminProvisioning(m, "tenant-1")
	m.tokens.EXPECT().IssueTokens(gomock.Any(), gomock.Any()).Return(&authentication.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	session, err := s.Register(context.Background(), &RegisterRequest{
		OrganizationName: "Acme",
		OrganizationCode: " acme ",
		Email:            "Jane@Acme.com",
		Password:         "password123",
		FullName:         "Jane Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.AccessToken != "access" || session.RefreshToken != "refresh" {
		t.Errorf("unexpected tokens %+v", session)
	}
	if session.User.Email != "jane@acme.com" || !session.User.Active || session.User.TenantID != "tenant-1" {
		t.Errorf("unexpected user %+v", session.User)
	}
	if !authentication.CheckPassword(session.User.PasswordHash, "password123") {
		t.Error("expected the stored hash to match the password")
	}
}

func TestServiceRegisterConflicts(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks)
	}{
		{
			name: "organization code taken",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetTenantByCode(gomock.Any(), "ACME").Return(&types.Tenant{ID: "tenant-0"}, nil)
			},
		},
		{
			name: "email registered",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetTenantByCode(gomock.Any(), "ACME").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(&types.User{ID: "user-0"}, nil)
			},
		},
		{
			name: "concurrent registration",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetTenantByCode(gomock.Any(), "ACME").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			_, err := s.Register(context.Background(), &RegisterRequest{
				OrganizationName: "Acme",
				OrganizationCode: "acme",
				Email:            "jane@acme.com",
				Password:         "password123",
				FullName:         "Jane Doe",
			})
			if !errors.Is(err, types.ErrConflict) {
				t.Errorf("expected conflict, got %v", err)
			}
		})
	}
}

func TestServiceLogin(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		setupMocks  func(*testing.T, *mocks)
		expectedErr error
	}{
		{
			name:     "unknown email",
			password: "password123",
			setupMocks: func(_ *testing.T, m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMocks: func(t *testing.T, m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(&types.User{ID: "user-1", PasswordHash: hashed(t, "password123"), Active: true}, nil)
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "external only account",
			password: "password123",
			setupMocks: func(_ *testing.T, m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(&types.User{ID: "user-1", Active: true}, nil)
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			password: "password123",
			setupMocks: func(t *testing.T, m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(&types.User{ID: "user-1", PasswordHash: hashed(t, "password123"), Active: false}, nil)
			},
			expectedErr: types.ErrInactiveAccount,
		},
		{
			name:     "success",
			password: "password123",
			setupMocks: func(t *testing.T, m *mocks) {
				user := &types.User{ID: "user-1", TenantID: "tenant-1", PasswordHash: hashed(t, "password123"), Active: true}
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(user, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)
				m.tokens.EXPECT().IssueTokens(gomock.Any(), user).Return(&authentication.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(t, m)

			session, err := s.Login(context.Background(), " Jane@Acme.com", test.password)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.Tenant.ID != "tenant-1" || session.AccessToken != "a" {
				t.Errorf("unexpected session %+v", session)
			}
		})
	}
}

func TestServiceRefresh(t *testing.T) {
	claims := func(sub string) *authentication.Claims {
		c := new(authentication.Claims)
		c.Subject = sub
		return c
	}

	tests := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "invalid token",
			setupMocks: func(m *mocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "refresh", authentication.REFRESH_TOKEN).Return(nil, types.ErrAuthentication)
			},
			expectedErr: types.ErrAuthentication,
		},
		{
			name: "deleted user",
			setupMocks: func(m *mocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "refresh", authentication.REFRESH_TOKEN).Return(claims("user-1"), nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrInactiveAccount,
		},
		{
			name: "inactive user",
			setupMocks: func(m *mocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "refresh", authentication.REFRESH_TOKEN).Return(claims("user-1"), nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1"}, nil)
			},
			expectedErr: types.ErrInactiveAccount,
		},
		{
			name: "success",
			setupMocks: func(m *mocks) {
				user := &types.User{ID: "user-1", Active: true}
				m.tokens.EXPECT().Verify(gomock.Any(), "refresh", authentication.REFRESH_TOKEN).Return(claims("user-1"), nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
				m.tokens.EXPECT().IssueAccessToken(gomock.Any(), user).Return("new-access", nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			token, err := s.Refresh(context.Background(), "refresh")
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil || token != "new-access" {
				t.Errorf("unexpected result %q, %v", token, err)
			}
		})
	}
}

func TestServiceSignInExternal(t *testing.T) {
	identity := &authentication.ExternalIdentity{Subject: "abc123xyz", Email: "jane.doe@example.com", Name: "Jane Doe"}

	tests := []struct {
		name       string
		setupMocks func(*mocks)
	}{
		{
			name: "known subject",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByExternalID(gomock.Any(), "abc123xyz").Return(&types.User{ID: "user-1", TenantID: "tenant-1", Active: true}, nil)
			},
		},
		{
			name: "existing email gets linked",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByExternalID(gomock.Any(), "abc123xyz").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").Return(&types.User{ID: "user-1", TenantID: "tenant-1", Active: true}, nil)
				m.storage.EXPECT().LinkExternalIdentity(gomock.Any(), "user-1", "abc123xyz").Return(nil)
			},
		},
		{
			name: "new identity gets a personal tenant",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByExternalID(gomock.Any(), "abc123xyz").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").Return(nil, storage.ErrNotFound)
				gomock.InOrder(
					m.storage.EXPECT().GetTenantByCode(gomock.Any(), "PERSONAL_JANEDOEABC123").Return(&types.Tenant{ID: "taken"}, nil),
					m.storage.EXPECT().GetTenantByCode(gomock.Any(), "PERSONAL_JANEDOEABC1231").Return(nil, storage.ErrNotFound),
				)
				m.storage.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{Name: "Personal (Jane Doe)", Code: "PERSONAL_JANEDOEABC1231"}).Return(&types.Tenant{ID: "tenant-1"}, nil)
				expectAdminProvisioning(m, "tenant-1")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)

			m.external.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return(identity, nil)
			test.setupMocks(m)
			m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)
			m.tokens.EXPECT().IssueTokens(gomock.Any(), gomock.Any()).Return(&authentication.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

			session, err := s.SignInExternal(context.Background(), "id-token")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.User.ID != "user-1" || session.Tenant.ID != "tenant-1" {
				t.Errorf("unexpected session %+v", session)
			}
		})
	}
}

func TestPersonalCodeBase(t *testing.T) {
	tests := []struct {
		email, subject, expected string
	}{
		{"jane.doe@example.com", "abc123xyz", "PERSONAL_JANEDOEABC123"},
		{"a.very.long.name@example.com", "1", "PERSONAL_AVERYLON1"},
		{"...@example.com", "", "PERSONAL_USER0"},
	}

	for _, test := range tests {
		t.Run(test.email, func(t *testing.T) {
			if code := personalCodeBase(test.email, test.subject); code != test.expected {
				t.Errorf("expected %s, got %s", test.expected, code)
			}
		})
	}
}

func TestServiceMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	user := &types.User{ID: "user-1", TenantID: "tenant-1", Active: true}

	m.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1"}, nil)
	m.authz.EXPECT().Permissions(gomock.Any(), "user-1").Return(authorization.NewPermissionSet("pm.view", "crm.view"), nil)

	profile, err := s.Me(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile.Permissions) != 2 || profile.Permissions[0] != "crm.view" {
		t.Errorf("unexpected permissions %v", profile.Permissions)
	}
}
