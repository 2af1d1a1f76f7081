// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/canonical/erp-service/internal/authorization"
	"github.com/canonical/erp-service/internal/logging"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/tracing"
	"github.com/canonical/erp-service/internal/types"
	"github.com/canonical/erp-service/pkg/authentication"
)

const (
	ADMIN_ROLE             = "Admin"
	adminRoleDescription   = "Full access"
	personalTenantPrefix   = "PERSONAL_"
	maxPersonalCodeRetries = 1000
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

type Service struct {
	storage  StorageInterface
	tx       TxInterface
	tokens   authentication.TokenManagerInterface
	external authentication.ExternalVerifierInterface
	authz    authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	tokens authentication.TokenManagerInterface,
	external authentication.ExternalVerifierInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		tx:       tx,
		tokens:   tokens,
		external: external,
		authz:    authz,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Register creates a tenant with its first user, who is granted the whole permission catalog.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Register")
	defer span.End()

	code := strings.ToUpper(strings.TrimSpace(req.OrganizationCode))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := authentication.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var (
		tenant *types.Tenant
		user   *types.User
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ensureUnique(ctx, code, email); err != nil {
			return err
		}

		tenant, err = s.storage.CreateTenant(ctx, &types.Tenant{Name: strings.TrimSpace(req.OrganizationName), Code: code})
		if err != nil {
			return err
		}

		user, err = s.provisionAdmin(ctx, &types.User{
			TenantID:     tenant.ID,
			Email:        email,
			PasswordHash: &hash,
			FullName:     strings.TrimSpace(req.FullName),
			Active:       true,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.Conflict("organization code or email already registered")
		}
		return nil, err
	}

	s.logger.Security().AdminAction(user.ID, "register", "tenant", tenant.ID)

	return s.session(ctx, user, tenant)
}

func (s *Service) ensureUnique(ctx context.Context, code, email string) error {
	if _, err := s.storage.GetTenantByCode(ctx, code); err == nil {
		return types.Conflict("organization code already taken")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return types.Conflict("email already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}

// provisionAdmin creates the user and the tenant Admin role holding every catalog permission.
func (s *Service) provisionAdmin(ctx context.Context, u *types.User) (*types.User, error) {
	user, err := s.storage.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	role, err := s.storage.CreateRole(ctx, &types.Role{TenantID: user.TenantID, Name: ADMIN_ROLE, Description: adminRoleDescription})
	if err != nil {
		return nil, err
	}

	permissions, err := s.storage.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(permissions))
	for _, p := range permissions {
		keys = append(keys, p.ID)
	}

	if err := s.storage.SetRolePermissions(ctx, role.ID, keys); err != nil {
		return nil, err
	}

	if err := s.storage.AssignRole(ctx, user.ID, role.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if user == nil || !authentication.CheckPassword(user.PasswordHash, password) {
		s.logger.Security().AuthnFailure(email, "invalid_credentials")
		return nil, types.ErrInvalidCredentials
	}

	if !user.Active {
		s.logger.Security().AuthnFailure(user.ID, "account_inactive")
		return nil, fmt.Errorf("user %s: %w", user.ID, types.ErrInactiveAccount)
	}

	tenant, err := s.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(user.ID)

	return s.session(ctx, user, tenant)
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Refresh")
	defer span.End()

	claims, err := s.tokens.Verify(ctx, refreshToken, authentication.REFRESH_TOKEN)
	if err != nil {
		s.logger.Security().AuthnFailure("", "invalid_refresh_token")
		return "", err
	}

	user, err := s.activeUser(ctx, claims.Subject)
	if err != nil {
		return "", err
	}

	return s.tokens.IssueAccessToken(ctx, user)
}

// SignInExternal signs in with an external ID token, linking the identity to a user by subject or email.
// Unknown identities get a personal tenant of their own.
func (s *Service) SignInExternal(ctx context.Context, idToken string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignInExternal")
	defer span.End()

	identity, err := s.external.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Security().AuthnFailure("", "invalid_id_token")
		return nil, err
	}

	var user *types.User

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		user, err = s.storage.GetUserByExternalID(ctx, identity.Subject)
		if err == nil || !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		user, err = s.storage.GetUserByEmail(ctx, identity.Email)
		if err == nil {
			return s.storage.LinkExternalIdentity(ctx, user.ID, identity.Subject)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		user, err = s.provisionPersonal(ctx, identity)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !user.Active {
		s.logger.Security().AuthnFailure(user.ID, "account_inactive")
		return nil, fmt.Errorf("user %s: %w", user.ID, types.ErrInactiveAccount)
	}

	tenant, err := s.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(user.ID)

	return s.session(ctx, user, tenant)
}

func (s *Service) provisionPersonal(ctx context.Context, identity *authentication.ExternalIdentity) (*types.User, error) {
	code, err := s.personalTenantCode(ctx, identity.Email, identity.Subject)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = identity.Email
	}

	tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: fmt.Sprintf("Personal (%s)", name), Code: code})
	if err != nil {
		return nil, err
	}

	subject := identity.Subject
	user, err := s.provisionAdmin(ctx, &types.User{
		TenantID:   tenant.ID,
		Email:      identity.Email,
		ExternalID: &subject,
		FullName:   name,
		Active:     true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("provisioned personal tenant %s for %s", code, user.ID)
	return user, nil
}

// personalTenantCode returns the first free PERSONAL_<LOCAL><SUB6>[n] code.
func (s *Service) personalTenantCode(ctx context.Context, email, subject string) (string, error) {
	base := personalCodeBase(email, subject)

	code := base
	for n := 1; n <= maxPersonalCodeRetries; n++ {
		_, err := s.storage.GetTenantByCode(ctx, code)
		if errors.Is(err, storage.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		code = fmt.Sprintf("%s%d", base, n)
	}

	return "", types.Conflict("no free organization code for %s", base)
}

func personalCodeBase(email, subject string) string {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	local = nonAlphanumeric.ReplaceAllString(local, "")
	if len(local) > 8 {
		local = local[:8]
	}
	if local == "" {
		local = "user"
	}

	suffix := subject
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	if suffix == "" {
		suffix = "0"
	}

	return personalTenantPrefix + strings.ToUpper(local+suffix)
}

// Me returns the caller with its tenant and the permission keys granted right now.
func (s *Service) Me(ctx context.Context, user *types.User) (*Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Me")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, err
	}

	permissions, err := s.authz.Permissions(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Tenant: tenant, Permissions: permissions.Keys()}, nil
}

func (s *Service) activeUser(ctx context.Context, id string) (*types.User, error) {
	user, err := s.storage.GetUserByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && !user.Active) {
		s.logger.Security().AuthnFailure(id, "account_inactive")
		return nil, fmt.Errorf("user %s: %w", id, types.ErrInactiveAccount)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) session(ctx context.Context, user *types.User, tenant *types.Tenant) (*Session, error) {
	pair, err := s.tokens.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &Session{
		User:         user,
		Tenant:       tenant,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
